package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/shopspring/decimal"
)

const (
	adExpensesTable = "ad_expenses"
)

type AdExpenseRepository interface {
	SumBetween(ctx context.Context, from, to time.Time) (*decimal.Decimal, error)
}

type adExpenseRepository struct {
	conn postgres.Queryer
}

func NewAdExpenseRepository(conn postgres.Queryer) AdExpenseRepository {
	return &adExpenseRepository{
		conn: conn,
	}
}

// SumBetween soma os gastos com anúncio em [from, to); retorna nil se não houver lançamentos
func (r *adExpenseRepository) SumBetween(ctx context.Context, from, to time.Time) (*decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(amount), 0)").
		From(adExpensesTable).
		Where(squirrel.GtOrEq{"expense_date": from}).
		Where(squirrel.Lt{"expense_date": to}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		count int64
		total decimal.Decimal
	)
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count, &total); err != nil {
		return nil, fmt.Errorf("erro ao escanear gastos com anúncios: %w", err)
	}

	if count == 0 {
		return nil, nil
	}

	return &total, nil
}
