// Package reporting calcula orçado vs. realizado e o resumo de resultado a partir do livro de vendas
package reporting

import (
	"context"
	"strconv"

	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/log"
	"github.com/rinori/sales-ledger-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// priorYearOffset é o deslocamento em meses usado para o ano anterior
const priorYearOffset = -12

type Reporter interface {
	Compare(ctx context.Context, query domain.ComparisonQuery) ([]*domain.PeriodComparison, error)
	Summary(ctx context.Context, query domain.PLQuery) (*domain.PLSummary, error)
	ExportComparison(ctx context.Context, query domain.ComparisonQuery) ([]byte, string, error)
}

type Service struct {
	salesRecords repository.SalesRecordRepository
	budgets      repository.BudgetRepository
	categories   repository.CategoryRepository
	adExpenses   repository.AdExpenseRepository
}

func NewService(
	salesRecords repository.SalesRecordRepository,
	budgets repository.BudgetRepository,
	categories repository.CategoryRepository,
	adExpenses repository.AdExpenseRepository,
) *Service {
	return &Service{
		salesRecords: salesRecords,
		budgets:      budgets,
		categories:   categories,
		adExpenses:   adExpenses,
	}
}

// Compare monta, para cada mês do intervalo, as linhas de realizado, orçado e ano anterior
// por item da dimensão. O ano anterior é uma agregação independente do mês M-12.
func (s *Service) Compare(ctx context.Context, query domain.ComparisonQuery) ([]*domain.PeriodComparison, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"start_ym":  query.StartYm,
		"end_ym":    query.EndYm,
		"dimension": query.Dimension,
	})

	periods, err := validateComparison(query)
	if err != nil {
		return nil, err
	}

	priorPeriods := make([]string, 0, len(periods))
	for _, period := range periods {
		prior, _ := utils.ShiftPeriod(period, priorYearOffset)
		priorPeriods = append(priorPeriods, prior)
	}

	filters := domain.SalesFactFilters{SalesChannelID: query.SalesChannelID}
	var productCodes []string
	if query.Dimension == domain.DimensionProduct && len(query.DimensionIDs) > 0 {
		productCodes = query.DimensionIDs
		filters.ProductCodes = productCodes
	}

	var (
		current    []*domain.SalesFact
		prior      []*domain.SalesFact
		budgets    []*domain.MonthlyBudget
		categories map[int]*domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		f := filters
		f.Periods = periods
		facts, err := s.salesRecords.AggregateFacts(gctx, f)
		current = facts
		return err
	})

	g.Go(func() error {
		f := filters
		f.Periods = priorPeriods
		facts, err := s.salesRecords.AggregateFacts(gctx, f)
		prior = facts
		return err
	})

	// Orçamento não tem canal: com filtro de canal nem é consultado
	if !query.ChannelFiltered() {
		g.Go(func() error {
			rows, err := s.budgets.ListMonthly(gctx, periods, productCodes)
			budgets = rows
			return err
		})
	}

	if query.Dimension == domain.DimensionCategory {
		g.Go(func() error {
			rows, err := s.categories.ListAll(gctx)
			categories = rows
			return err
		})
	}

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("report: falha ao consultar dados")
		return nil, NewQueryError(err)
	}

	builder := newComparisonBuilder(query, categories)
	for _, fact := range current {
		builder.addActual(fact)
	}
	for _, fact := range prior {
		period, _ := utils.ShiftPeriod(fact.PeriodYm, -priorYearOffset)
		builder.addPrior(period, fact)
	}
	for _, budget := range budgets {
		builder.addBudget(budget)
	}

	result := builder.build(periods)

	logger.WithFields(log.Fields{
		"current_facts": len(current),
		"prior_facts":   len(prior),
		"budget_rows":   len(budgets),
	}).Debug("report: comparação calculada")

	return result, nil
}

func validateComparison(query domain.ComparisonQuery) ([]string, error) {
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

	if !query.Dimension.IsValid() {
		return nil, NewValidationError(ErrInvalidDimension, string(query.Dimension))
	}

	if query.Dimension == domain.DimensionCategory {
		for _, id := range query.DimensionIDs {
			if isUnclassifiedID(id) {
				continue
			}
			if _, err := strconv.Atoi(id); err != nil {
				return nil, NewValidationError(ErrInvalidDimensionID, id)
			}
		}
	}

	return periods, nil
}
