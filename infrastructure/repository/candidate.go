package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/internal/domain"
)

const (
	candidatesTable = "new_product_candidates"
)

type CandidateRepository interface {
	InsertIfAbsent(ctx context.Context, candidate *domain.NewProductCandidate) (bool, error)
	GetByCodes(ctx context.Context, codes []string) ([]*domain.NewProductCandidate, error)
	List(ctx context.Context, status *domain.CandidateStatus) ([]*domain.NewProductCandidate, error)
	UpdateStatus(ctx context.Context, codes []string, status domain.CandidateStatus) (int64, error)
}

type candidateRepository struct {
	conn postgres.Queryer
}

func NewCandidateRepository(conn postgres.Queryer) CandidateRepository {
	return &candidateRepository{
		conn: conn,
	}
}

// InsertIfAbsent cria o candidato como pendente. Se já existir um candidato para o
// código, em qualquer status, nada é alterado e o retorno é false.
func (r *candidateRepository) InsertIfAbsent(ctx context.Context, candidate *domain.NewProductCandidate) (bool, error) {
	query, args, err := squirrel.
		Insert(candidatesTable).
		Columns("product_code", "sample_sku", "product_name", "status").
		Values(candidate.ProductCode, candidate.SampleSKU, candidate.ProductName, domain.CandidateStatusPending).
		Suffix("ON CONFLICT (product_code) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func (r *candidateRepository) GetByCodes(ctx context.Context, codes []string) ([]*domain.NewProductCandidate, error) {
	if len(codes) == 0 {
		return []*domain.NewProductCandidate{}, nil
	}

	return r.list(ctx, squirrel.Eq{"product_code": codes})
}

func (r *candidateRepository) List(ctx context.Context, status *domain.CandidateStatus) ([]*domain.NewProductCandidate, error) {
	where := squirrel.Eq{}
	if status != nil {
		where["status"] = *status
	}

	return r.list(ctx, where)
}

func (r *candidateRepository) UpdateStatus(ctx context.Context, codes []string, status domain.CandidateStatus) (int64, error) {
	if len(codes) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Update(candidatesTable).
		Set("status", status).
		Where(squirrel.Eq{"product_code": codes}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected, nil
}

func (r *candidateRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*domain.NewProductCandidate, error) {
	query, args, err := squirrel.
		Select("product_code", "sample_sku", "COALESCE(product_name, '')", "status", "detected_at").
		From(candidatesTable).
		Where(where).
		OrderBy("detected_at DESC", "product_code ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.NewProductCandidate{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	candidates := make([]*domain.NewProductCandidate, 0)
	for rows.Next() {
		candidate := &domain.NewProductCandidate{}
		err := rows.Scan(
			&candidate.ProductCode,
			&candidate.SampleSKU,
			&candidate.ProductName,
			&candidate.Status,
			&candidate.DetectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear candidato: %w", err)
		}
		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return candidates, nil
}
