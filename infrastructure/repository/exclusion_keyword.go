package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/internal/domain"
)

const (
	exclusionKeywordsTable = "exclusion_keywords"

	pqUniqueViolation = "23505"
)

type ExclusionKeywordRepository interface {
	List(ctx context.Context) ([]*domain.ExclusionKeyword, error)
	Create(ctx context.Context, keyword *domain.ExclusionKeyword) (*domain.ExclusionKeyword, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type exclusionKeywordRepository struct {
	conn postgres.Queryer
}

func NewExclusionKeywordRepository(conn postgres.Queryer) ExclusionKeywordRepository {
	return &exclusionKeywordRepository{
		conn: conn,
	}
}

func (r *exclusionKeywordRepository) List(ctx context.Context) ([]*domain.ExclusionKeyword, error) {
	query, args, err := squirrel.
		Select("id", "keyword", "match_type").
		From(exclusionKeywordsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	keywords := make([]*domain.ExclusionKeyword, 0)
	for rows.Next() {
		keyword := &domain.ExclusionKeyword{}
		if err := rows.Scan(&keyword.ID, &keyword.Keyword, &keyword.MatchType); err != nil {
			return nil, fmt.Errorf("erro ao escanear palavra de exclusão: %w", err)
		}
		keywords = append(keywords, keyword)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keywords, nil
}

func (r *exclusionKeywordRepository) Create(ctx context.Context, keyword *domain.ExclusionKeyword) (*domain.ExclusionKeyword, error) {
	query, args, err := squirrel.
		Insert(exclusionKeywordsTable).
		Columns("keyword", "match_type").
		Values(keyword.Keyword, keyword.MatchType).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&keyword.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicated
		}
		return nil, fmt.Errorf("erro ao inserir palavra de exclusão: %w", err)
	}

	return keyword, nil
}

func (r *exclusionKeywordRepository) Delete(ctx context.Context, id int) (bool, error) {
	query, args, err := squirrel.
		Delete(exclusionKeywordsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected > 0, nil
}
