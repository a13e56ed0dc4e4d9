package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/internal/domain"
)

const (
	taxRatesTable = "tax_rates"
)

type TaxRateRepository interface {
	GetEffective(ctx context.Context, periodYm string) (*domain.TaxRate, error)
	List(ctx context.Context) ([]*domain.TaxRate, error)
}

type taxRateRepository struct {
	conn postgres.Queryer
}

func NewTaxRateRepository(conn postgres.Queryer) TaxRateRepository {
	return &taxRateRepository{
		conn: conn,
	}
}

// GetEffective retorna a taxa com o maior start_ym <= periodYm, ou nil se não houver
func (r *taxRateRepository) GetEffective(ctx context.Context, periodYm string) (*domain.TaxRate, error) {
	query, args, err := squirrel.
		Select("id", "start_ym", "rate").
		From(taxRatesTable).
		Where(squirrel.LtOrEq{"start_ym": periodYm}).
		OrderBy("start_ym DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rate := &domain.TaxRate{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&rate.ID, &rate.StartYm, &rate.Rate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear taxa de imposto: %w", err)
	}

	return rate, nil
}

func (r *taxRateRepository) List(ctx context.Context) ([]*domain.TaxRate, error) {
	query, args, err := squirrel.
		Select("id", "start_ym", "rate").
		From(taxRatesTable).
		OrderBy("start_ym ASC").
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

	rates := make([]*domain.TaxRate, 0)
	for rows.Next() {
		rate := &domain.TaxRate{}
		if err := rows.Scan(&rate.ID, &rate.StartYm, &rate.Rate); err != nil {
			return nil, fmt.Errorf("erro ao escanear taxa de imposto: %w", err)
		}
		rates = append(rates, rate)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rates, nil
}
