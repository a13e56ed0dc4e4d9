package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/internal/domain"
)

const (
	categoriesTable    = "categories"
	salesChannelsTable = "sales_channels"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) (map[int]*domain.Category, error)
	ListChannels(ctx context.Context) ([]*domain.SalesChannel, error)
	ChannelExists(ctx context.Context, channelID int) (bool, error)
}

type categoryRepository struct {
	conn postgres.Queryer
}

func NewCategoryRepository(conn postgres.Queryer) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) ListAll(ctx context.Context) (map[int]*domain.Category, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(categoriesTable).
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

	categories := make(map[int]*domain.Category)
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories[category.ID] = category
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) ListChannels(ctx context.Context) ([]*domain.SalesChannel, error) {
	query, args, err := squirrel.
		Select("id", "name").
		From(salesChannelsTable).
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

	channels := make([]*domain.SalesChannel, 0)
	for rows.Next() {
		channel := &domain.SalesChannel{}
		if err := rows.Scan(&channel.ID, &channel.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear canal de venda: %w", err)
		}
		channels = append(channels, channel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

func (r *categoryRepository) ChannelExists(ctx context.Context, channelID int) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(salesChannelsTable).
		Where(squirrel.Eq{"id": channelID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao verificar canal de venda: %w", err)
	}

	return count > 0, nil
}
