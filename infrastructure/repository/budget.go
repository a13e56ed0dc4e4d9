package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rinori/sales-ledger-api/infrastructure/database/postgres"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	monthlyBudgetsTable    = "monthly_budgets"
	adBudgetsTable         = "ad_budgets"
	managementBudgetsTable = "management_budgets"
)

type BudgetRepository interface {
	ListMonthly(ctx context.Context, periods []string, productCodes []string) ([]*domain.MonthlyBudget, error)
	SumMonthly(ctx context.Context, periods []string) (*BudgetTotals, error)
	SumAdBudget(ctx context.Context, periods []string) (*decimal.Decimal, error)
	SumManagementBudget(ctx context.Context, periods []string) (*BudgetTotals, error)
}

// BudgetTotals vem nulo quando não há nenhuma linha de orçamento no intervalo
type BudgetTotals struct {
	Sales       decimal.Decimal
	GrossProfit decimal.Decimal
}

type budgetRepository struct {
	conn postgres.Queryer
}

func NewBudgetRepository(conn postgres.Queryer) BudgetRepository {
	return &budgetRepository{
		conn: conn,
	}
}

func (r *budgetRepository) ListMonthly(ctx context.Context, periods []string, productCodes []string) ([]*domain.MonthlyBudget, error) {
	builder := squirrel.
		Select(
			"mb.period_ym",
			"mb.product_code",
			"mb.budget_quantity",
			"mb.budget_sales_excl_tax",
			"mb.budget_cost_excl_tax",
			"mb.budget_gross_profit",
			"COALESCE(p.product_name, mb.product_code)",
			"p.category_id",
		).
		From(monthlyBudgetsTable + " mb").
		LeftJoin(productsTable + " p ON p.product_code = mb.product_code").
		Where(squirrel.Eq{"mb.period_ym": periods}).
		OrderBy("mb.period_ym ASC", "mb.product_code ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(productCodes) > 0 {
		builder = builder.Where(squirrel.Eq{"mb.product_code": productCodes})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	budgets := make([]*domain.MonthlyBudget, 0)
	for rows.Next() {
		budget := &domain.MonthlyBudget{}
		err := rows.Scan(
			&budget.PeriodYm,
			&budget.ProductCode,
			&budget.BudgetQuantity,
			&budget.BudgetSalesExclTax,
			&budget.BudgetCostExclTax,
			&budget.BudgetGrossProfit,
			&budget.ProductName,
			&budget.CategoryID,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear orçamento mensal: %w", err)
		}
		budgets = append(budgets, budget)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return budgets, nil
}

func (r *budgetRepository) SumMonthly(ctx context.Context, periods []string) (*BudgetTotals, error) {
	return r.sumPair(ctx, monthlyBudgetsTable, "budget_sales_excl_tax", "budget_gross_profit", periods)
}

func (r *budgetRepository) SumManagementBudget(ctx context.Context, periods []string) (*BudgetTotals, error) {
	return r.sumPair(ctx, managementBudgetsTable, "sales", "gross_profit", periods)
}

func (r *budgetRepository) SumAdBudget(ctx context.Context, periods []string) (*decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(amount), 0)").
		From(adBudgetsTable).
		Where(squirrel.Eq{"period_ym": periods}).
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
		return nil, fmt.Errorf("erro ao escanear orçamento de anúncios: %w", err)
	}

	if count == 0 {
		return nil, nil
	}

	return &total, nil
}

func (r *budgetRepository) sumPair(ctx context.Context, table, salesColumn, gpColumn string, periods []string) (*BudgetTotals, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			fmt.Sprintf("COALESCE(SUM(%s), 0)", salesColumn),
			fmt.Sprintf("COALESCE(SUM(%s), 0)", gpColumn),
		).
		From(table).
		Where(squirrel.Eq{"period_ym": periods}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	totals := &BudgetTotals{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count, &totals.Sales, &totals.GrossProfit); err != nil {
		return nil, fmt.Errorf("erro ao escanear totais de orçamento: %w", err)
	}

	if count == 0 {
		return nil, nil
	}

	return totals, nil
}
