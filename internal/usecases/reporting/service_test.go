package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportFixture struct {
	service      *Service
	salesRecords *mocks.MockSalesRecordRepository
	budgets      *mocks.MockBudgetRepository
	categories   *mocks.MockCategoryRepository
	adExpenses   *mocks.MockAdExpenseRepository
}

func newReportFixture(t *testing.T) *reportFixture {
	ctrl := gomock.NewController(t)

	f := &reportFixture{
		salesRecords: mocks.NewMockSalesRecordRepository(ctrl),
		budgets:      mocks.NewMockBudgetRepository(ctrl),
		categories:   mocks.NewMockCategoryRepository(ctrl),
		adExpenses:   mocks.NewMockAdExpenseRepository(ctrl),
	}
	f.service = NewService(f.salesRecords, f.budgets, f.categories, f.adExpenses)

	return f
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func intPtr(v int) *int {
	return &v
}

func fact(period, code string, categoryID *int, qty, sales, gp int64) *domain.SalesFact {
	return &domain.SalesFact{
		PeriodYm:    period,
		ProductCode: code,
		ProductName: "Nome " + code,
		CategoryID:  categoryID,
		Quantity:    qty,
		Sales:       dec(sales),
		GrossProfit: dec(gp),
	}
}

func findItem(t *testing.T, comparison *domain.PeriodComparison, id string) *domain.ComparisonItem {
	t.Helper()
	for _, item := range comparison.Data {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %s não encontrado em %s", id, comparison.PeriodYm)
	return nil
}

func TestService_Compare_ProductAchievementRate(t *testing.T) {
	f := newReportFixture(t)
	ids := []string{"RINO-A", "RINO-B", "RINO-C"}

	f.salesRecords.EXPECT().
		AggregateFacts(gomock.Any(), domain.SalesFactFilters{Periods: []string{"2024-05"}, ProductCodes: ids}).
		Return([]*domain.SalesFact{
			fact("2024-05", "RINO-A", nil, 3, 3000, 1000),
			fact("2024-05", "RINO-B", nil, 2, 2000, 800),
			fact("2024-05", "RINO-C", nil, 5, 5000, 2000),
		}, nil)
	f.salesRecords.EXPECT().
		AggregateFacts(gomock.Any(), domain.SalesFactFilters{Periods: []string{"2023-05"}, ProductCodes: ids}).
		Return([]*domain.SalesFact{}, nil)
	f.budgets.EXPECT().
		ListMonthly(gomock.Any(), []string{"2024-05"}, ids).
		Return([]*domain.MonthlyBudget{
			// Linha explícita com orçamento zero
			{PeriodYm: "2024-05", ProductCode: "RINO-A", BudgetQuantity: 0, BudgetSalesExclTax: dec(0), BudgetGrossProfit: dec(0)},
			{PeriodYm: "2024-05", ProductCode: "RINO-C", BudgetQuantity: 4, BudgetSalesExclTax: dec(4000), BudgetGrossProfit: dec(1600)},
		}, nil)

	result, err := f.service.Compare(context.Background(), domain.ComparisonQuery{
		StartYm:      "2024-05",
		EndYm:        "2024-05",
		Dimension:    domain.DimensionProduct,
		DimensionIDs: ids,
	})

	require.NoError(t, err)
	require.Len(t, result, 1)

	zeroBudget := findItem(t, result[0], "RINO-A")
	require.NotNil(t, zeroBudget.AchievementRate)
	assert.Equal(t, 0.0, *zeroBudget.AchievementRate)
	require.NotNil(t, zeroBudget.BudgetSales)
	assert.True(t, zeroBudget.BudgetSales.IsZero())

	noBudget := findItem(t, result[0], "RINO-B")
	assert.Nil(t, noBudget.AchievementRate)
	assert.Nil(t, noBudget.BudgetSales)
	assert.Nil(t, noBudget.BudgetQuantity)

	withBudget := findItem(t, result[0], "RINO-C")
	require.NotNil(t, withBudget.AchievementRate)
	assert.Equal(t, 125.0, *withBudget.AchievementRate)
	assert.Equal(t, "Nome RINO-C", withBudget.Name)
	assert.Nil(t, withBudget.PrevYearSales)
}

func TestService_Compare_ChannelFilterNullsBudget(t *testing.T) {
	f := newReportFixture(t)
	channelID := 3

	f.salesRecords.EXPECT().
		AggregateFacts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.SalesFactFilters) ([]*domain.SalesFact, error) {
			assert.Equal(t, &channelID, filters.SalesChannelID)
			if filters.Periods[0] == "2024-05" {
				return []*domain.SalesFact{fact("2024-05", "RINO-A", nil, 1, 1000, 400)}, nil
			}
			return []*domain.SalesFact{}, nil
		}).
		Times(2)
	// Orçamento não é consultado com filtro de canal
	f.budgets.EXPECT().ListMonthly(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := f.service.Compare(context.Background(), domain.ComparisonQuery{
		StartYm:        "2024-05",
		EndYm:          "2024-05",
		Dimension:      domain.DimensionProduct,
		DimensionIDs:   []string{"RINO-A"},
		SalesChannelID: &channelID,
	})

	require.NoError(t, err)
	item := findItem(t, result[0], "RINO-A")
	assert.NotNil(t, item.ActualSales)
	assert.Nil(t, item.BudgetSales)
	assert.Nil(t, item.BudgetGrossProfit)
	assert.Nil(t, item.AchievementRate)
}

func TestService_Compare_ActualNullVersusZero(t *testing.T) {
	f := newReportFixture(t)

	f.salesRecords.EXPECT().
		AggregateFacts(gomock.Any(), domain.SalesFactFilters{Periods: []string{"2024-05", "2024-06"}}).
		Return([]*domain.SalesFact{
			fact("2024-05", "RINO-A", nil, 0, 0, 0),
			fact("2024-06", "RINO-A", nil, 2, 2000, 500),
		}, nil)
	f.salesRecords.EXPECT().
		AggregateFacts(gomock.Any(), domain.SalesFactFilters{Periods: []string{"2023-05", "2023-06"}}).
		Return([]*domain.SalesFact{
			fact("2023-06", "RINO-A", nil, 7, 7000, 3000),
		}, nil)
	f.budgets.EXPECT().ListMonthly(gomock.Any(), []string{"2024-05", "2024-06"}, gomock.Nil()).Return(nil, nil)

	result, err := f.service.Compare(context.Background(), domain.ComparisonQuery{
		StartYm:   "2024-05",
		EndYm:     "2024-06",
		Dimension: domain.DimensionOverall,
	})

	require.NoError(t, err)
	require.Len(t, result, 2)

	may := findItem(t, result[0], domain.OverallItemID)
	assert.Equal(t, domain.OverallItemName, may.Name)
	require.NotNil(t, may.ActualSales)
	assert.True(t, may.ActualSales.IsZero())
	assert.Nil(t, may.PrevYearSales)

	june := findItem(t, result[1], domain.OverallItemID)
	assert.Equal(t, "2000", june.ActualSales.String())
	require.NotNil(t, june.PrevYearSales)
	assert.Equal(t, "7000", june.PrevYearSales.String())
	assert.Equal(t, int64(7), *june.PrevYearQuantity)
}

func TestService_Compare_CategoryBuckets(t *testing.T) {
	f := newReportFixture(t)

	f.salesRecords.EXPECT().
		AggregateFacts(gomock.Any(), domain.SalesFactFilters{Periods: []string{"2024-05"}}).
		Return([]*domain.SalesFact{
			fact("2024-05", "RINO-A", intPtr(1), 1, 1000, 400),
			fact("2024-05", "RINO-B", intPtr(1), 1, 500, 100),
			fact("2024-05", "RINO-C", nil, 1, 300, 100),
			fact("2024-05", "RINO-D", intPtr(99), 1, 200, 50),
		}, nil)
	f.salesRecords.EXPECT().
		AggregateFacts(gomock.Any(), domain.SalesFactFilters{Periods: []string{"2023-05"}}).
		Return(nil, nil)
	f.budgets.EXPECT().
		ListMonthly(gomock.Any(), []string{"2024-05"}, gomock.Nil()).
		Return([]*domain.MonthlyBudget{
			{PeriodYm: "2024-05", ProductCode: "RINO-A", CategoryID: intPtr(1), BudgetSalesExclTax: dec(3000), BudgetGrossProfit: dec(1000), BudgetQuantity: 3},
		}, nil)
	f.categories.EXPECT().
		ListAll(gomock.Any()).
		Return(map[int]*domain.Category{1: {ID: 1, Name: "フレーム"}}, nil)

	result, err := f.service.Compare(context.Background(), domain.ComparisonQuery{
		StartYm:   "2024-05",
		EndYm:     "2024-05",
		Dimension: domain.DimensionCategory,
	})

	require.NoError(t, err)
	require.Len(t, result[0].Data, 3)
	assert.Equal(t, "1", result[0].Data[0].ID)
	assert.Equal(t, "99", result[0].Data[1].ID)
	assert.Equal(t, domain.UnclassifiedItemID, result[0].Data[2].ID)

	known := result[0].Data[0]
	assert.Equal(t, "フレーム", known.Name)
	assert.Equal(t, "1500", known.ActualSales.String())
	assert.Equal(t, 50.0, *known.AchievementRate)
	assert.False(t, known.Anomaly)

	anomaly := result[0].Data[1]
	assert.Equal(t, "不明(99)", anomaly.Name)
	assert.True(t, anomaly.Anomaly)
	assert.Equal(t, "200", anomaly.ActualSales.String())

	unclassified := result[0].Data[2]
	assert.Equal(t, domain.UnclassifiedName, unclassified.Name)
	assert.Equal(t, "300", unclassified.ActualSales.String())
	assert.Nil(t, unclassified.BudgetSales)
}

func TestService_Compare_RequestedCategoryWithoutData(t *testing.T) {
	f := newReportFixture(t)

	f.salesRecords.EXPECT().AggregateFacts(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	f.budgets.EXPECT().ListMonthly(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.categories.EXPECT().ListAll(gomock.Any()).Return(map[int]*domain.Category{}, nil)

	result, err := f.service.Compare(context.Background(), domain.ComparisonQuery{
		StartYm:      "2024-05",
		EndYm:        "2024-05",
		Dimension:    domain.DimensionCategory,
		DimensionIDs: []string{"null", "unclassified"},
	})

	require.NoError(t, err)
	require.Len(t, result[0].Data, 1)
	item := result[0].Data[0]
	assert.Equal(t, domain.UnclassifiedItemID, item.ID)
	assert.Nil(t, item.ActualSales)
	assert.Nil(t, item.AchievementRate)
}

func TestService_Compare_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query domain.ComparisonQuery
		err   error
	}{
		{
			name:  "Período inicial inválido",
			query: domain.ComparisonQuery{StartYm: "2024/05", EndYm: "2024-06", Dimension: domain.DimensionOverall},
			err:   ErrInvalidPeriod,
		},
		{
			name:  "Fim antes do início",
			query: domain.ComparisonQuery{StartYm: "2024-06", EndYm: "2024-05", Dimension: domain.DimensionOverall},
			err:   ErrInvalidRange,
		},
		{
			name:  "Dimensão desconhecida",
			query: domain.ComparisonQuery{StartYm: "2024-05", EndYm: "2024-05", Dimension: "channel"},
			err:   ErrInvalidDimension,
		},
		{
			name:  "Id de categoria não numérico",
			query: domain.ComparisonQuery{StartYm: "2024-05", EndYm: "2024-05", Dimension: domain.DimensionCategory, DimensionIDs: []string{"abc"}},
			err:   ErrInvalidDimensionID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportFixture(t)

			result, err := f.service.Compare(context.Background(), tt.query)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestService_Compare_RepositoryError(t *testing.T) {
	f := newReportFixture(t)

	f.salesRecords.EXPECT().AggregateFacts(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada")).AnyTimes()
	f.budgets.EXPECT().ListMonthly(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := f.service.Compare(context.Background(), domain.ComparisonQuery{
		StartYm:   "2024-05",
		EndYm:     "2024-05",
		Dimension: domain.DimensionOverall,
	})

	assert.ErrorIs(t, err, ErrQueryFailed)
}

func TestService_Summary(t *testing.T) {
	periods := []string{"2024-04", "2024-05"}

	t.Run("Sem filtro de canal", func(t *testing.T) {
		f := newReportFixture(t)
		adExpense := dec(300)
		adBudget := dec(500)

		f.salesRecords.EXPECT().
			SumTotals(gomock.Any(), domain.SalesFactFilters{Periods: periods, ManagedOnly: true}).
			Return(&repository.SalesTotals{Sales: dec(10000), Cost: dec(6000), GrossProfit: dec(4000), Records: 12}, nil)
		f.adExpenses.EXPECT().SumBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(&adExpense, nil)
		f.budgets.EXPECT().SumManagementBudget(gomock.Any(), periods).Return(nil, nil)
		f.budgets.EXPECT().
			SumMonthly(gomock.Any(), periods).
			Return(&repository.BudgetTotals{Sales: dec(8000), GrossProfit: dec(3000)}, nil)
		f.budgets.EXPECT().SumAdBudget(gomock.Any(), periods).Return(&adBudget, nil)

		summary, err := f.service.Summary(context.Background(), domain.PLQuery{StartYm: "2024-04", EndYm: "2024-05"})

		require.NoError(t, err)
		assert.Equal(t, "4000", summary.GrossProfit.String())
		assert.Equal(t, 40.0, *summary.GrossProfitRate)
		assert.Equal(t, "300", summary.AdExpense.String())
		assert.Equal(t, "3700", summary.OperatingProfit.String())
		assert.Equal(t, "8000", summary.BudgetSales.String())
		assert.Equal(t, "2000", summary.SalesVariance.String())
		assert.Equal(t, "1000", summary.GrossProfitVariance.String())
		assert.Equal(t, 125.0, *summary.SalesAchievementRate)
		assert.Equal(t, "500", summary.BudgetAdExpense.String())
	})

	t.Run("Orçamento gerencial prevalece", func(t *testing.T) {
		f := newReportFixture(t)

		f.salesRecords.EXPECT().SumTotals(gomock.Any(), gomock.Any()).
			Return(&repository.SalesTotals{Sales: dec(1000), Cost: dec(500), GrossProfit: dec(500)}, nil)
		f.adExpenses.EXPECT().SumBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.budgets.EXPECT().SumManagementBudget(gomock.Any(), periods).
			Return(&repository.BudgetTotals{Sales: dec(2000), GrossProfit: dec(900)}, nil)
		f.budgets.EXPECT().SumMonthly(gomock.Any(), periods).
			Return(&repository.BudgetTotals{Sales: dec(1), GrossProfit: dec(1)}, nil)
		f.budgets.EXPECT().SumAdBudget(gomock.Any(), periods).Return(nil, nil)

		summary, err := f.service.Summary(context.Background(), domain.PLQuery{StartYm: "2024-04", EndYm: "2024-05"})

		require.NoError(t, err)
		assert.Equal(t, "2000", summary.BudgetSales.String())
		assert.Equal(t, 50.0, *summary.SalesAchievementRate)
		assert.True(t, summary.AdExpense.IsZero())
		assert.Equal(t, "500", summary.OperatingProfit.String())
		assert.Nil(t, summary.BudgetAdExpense)
	})

	t.Run("Com filtro de canal", func(t *testing.T) {
		f := newReportFixture(t)
		channelID := 2

		f.salesRecords.EXPECT().
			SumTotals(gomock.Any(), domain.SalesFactFilters{Periods: periods, SalesChannelID: &channelID, ManagedOnly: true}).
			Return(&repository.SalesTotals{Sales: dec(0), Cost: dec(0), GrossProfit: dec(0)}, nil)

		summary, err := f.service.Summary(context.Background(), domain.PLQuery{StartYm: "2024-04", EndYm: "2024-05", SalesChannelID: &channelID})

		require.NoError(t, err)
		assert.Nil(t, summary.GrossProfitRate)
		assert.Nil(t, summary.AdExpense)
		assert.Nil(t, summary.OperatingProfit)
		assert.Nil(t, summary.BudgetSales)
		assert.Nil(t, summary.SalesAchievementRate)
	})
}
