package reporting

import (
	"context"

	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/log"
	"github.com/rinori/sales-ledger-api/pkg/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Summary calcula o resultado do intervalo considerando só produtos em gestão.
// Gasto com anúncio, lucro operacional e orçamentos não são por canal e ficam nulos com filtro de canal.
func (s *Service) Summary(ctx context.Context, query domain.PLQuery) (*domain.PLSummary, error) {
	if !utils.IsValidPeriod(query.StartYm) {
		return nil, NewValidationError(ErrInvalidPeriod, query.StartYm)
	}
	if !utils.IsValidPeriod(query.EndYm) {
		return nil, NewValidationError(ErrInvalidPeriod, query.EndYm)
	}

	periods, err := utils.PeriodRange(query.StartYm, query.EndYm)
	if err != nil {
		return nil, NewValidationError(ErrInvalidRange, err.Error())
	}

	from, _ := utils.ParsePeriod(query.StartYm)
	endFirst, _ := utils.ParsePeriod(query.EndYm)
	to := endFirst.AddDate(0, 1, 0)

	filtered := query.SalesChannelID != nil

	var (
		totals           *repository.SalesTotals
		adExpense        *decimal.Decimal
		managementBudget *repository.BudgetTotals
		monthlyBudget    *repository.BudgetTotals
		adBudget         *decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totals, err = s.salesRecords.SumTotals(gctx, domain.SalesFactFilters{
			Periods:        periods,
			SalesChannelID: query.SalesChannelID,
			ManagedOnly:    true,
		})
		return err
	})

	if !filtered {
		g.Go(func() error {
			var err error
			adExpense, err = s.adExpenses.SumBetween(gctx, from, to)
			return err
		})

		g.Go(func() error {
			var err error
			managementBudget, err = s.budgets.SumManagementBudget(gctx, periods)
			return err
		})

		g.Go(func() error {
			var err error
			monthlyBudget, err = s.budgets.SumMonthly(gctx, periods)
			return err
		})

		g.Go(func() error {
			var err error
			adBudget, err = s.budgets.SumAdBudget(gctx, periods)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("report: falha ao calcular resumo de resultado")
		return nil, NewQueryError(err)
	}

	summary := &domain.PLSummary{
		StartYm:     query.StartYm,
		EndYm:       query.EndYm,
		Sales:       totals.Sales,
		Cost:        totals.Cost,
		GrossProfit: totals.GrossProfit,
	}

	if totals.Sales.GreaterThan(decimal.Zero) {
		rate := utils.Percentage(totals.GrossProfit, totals.Sales)
		summary.GrossProfitRate = &rate
	}

	if filtered {
		return summary, nil
	}

	expense := decimal.Zero
	if adExpense != nil {
		expense = *adExpense
	}
	summary.AdExpense = decimalPtr(expense)
	summary.OperatingProfit = decimalPtr(totals.GrossProfit.Sub(expense))

	// Orçamento gerencial prevalece; sem ele, usa a soma do orçamento por produto
	budget := managementBudget
	if budget == nil {
		budget = monthlyBudget
	}

	if budget != nil {
		summary.BudgetSales = decimalPtr(budget.Sales)
		summary.BudgetGrossProfit = decimalPtr(budget.GrossProfit)
		summary.SalesVariance = decimalPtr(totals.Sales.Sub(budget.Sales))
		summary.GrossProfitVariance = decimalPtr(totals.GrossProfit.Sub(budget.GrossProfit))
		summary.SalesAchievementRate = achievementRate(totals.Sales, budget.Sales)
	}

	summary.BudgetAdExpense = adBudget

	return summary, nil
}
