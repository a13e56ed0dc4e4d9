package domain

import "github.com/shopspring/decimal"

type Dimension string

const (
	DimensionOverall  Dimension = "overall"
	DimensionProduct  Dimension = "product"
	DimensionCategory Dimension = "category"
)

func (d Dimension) IsValid() bool {
	switch d {
	case DimensionOverall, DimensionProduct, DimensionCategory:
		return true
	}
	return false
}

const (
	OverallItemID      = "overall"
	OverallItemName    = "全体"
	UnclassifiedItemID = "unclassified"
	UnclassifiedName   = "未分類"
)

type ComparisonQuery struct {
	StartYm        string
	EndYm          string
	Dimension      Dimension
	DimensionIDs   []string
	SalesChannelID *int
}

func (q ComparisonQuery) ChannelFiltered() bool {
	return q.SalesChannelID != nil
}

// ComparisonItem traz os valores de um item de dimensão em um período.
// Ponteiros nulos significam "sem dado", diferente de zero.
type ComparisonItem struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Anomaly             bool             `json:"anomaly,omitempty"`
	ActualSales         *decimal.Decimal `json:"actualSales"`
	BudgetSales         *decimal.Decimal `json:"budgetSales"`
	PrevYearSales       *decimal.Decimal `json:"prevYearSales"`
	ActualGrossProfit   *decimal.Decimal `json:"actualGrossProfit"`
	BudgetGrossProfit   *decimal.Decimal `json:"budgetGrossProfit"`
	PrevYearGrossProfit *decimal.Decimal `json:"prevYearGrossProfit"`
	ActualQuantity      *int64           `json:"actualQuantity"`
	BudgetQuantity      *int64           `json:"budgetQuantity"`
	PrevYearQuantity    *int64           `json:"prevYearQuantity"`
	AchievementRate     *float64         `json:"achievementRate"`
}

type PeriodComparison struct {
	PeriodYm string            `json:"periodYm"`
	Data     []*ComparisonItem `json:"data"`
}

// SalesFact é uma linha já agrupada do livro de vendas (período + produto)
type SalesFact struct {
	PeriodYm    string
	ProductCode string
	ProductName string
	CategoryID  *int
	Quantity    int64
	Sales       decimal.Decimal
	GrossProfit decimal.Decimal
}

type SalesFactFilters struct {
	Periods        []string
	ProductCodes   []string
	SalesChannelID *int
	ManagedOnly    bool
}

type PLQuery struct {
	StartYm        string
	EndYm          string
	SalesChannelID *int
}

type PLSummary struct {
	StartYm              string           `json:"startYm"`
	EndYm                string           `json:"endYm"`
	Sales                decimal.Decimal  `json:"sales"`
	Cost                 decimal.Decimal  `json:"cost"`
	GrossProfit          decimal.Decimal  `json:"grossProfit"`
	GrossProfitRate      *float64         `json:"grossProfitRate"`
	AdExpense            *decimal.Decimal `json:"adExpense"`
	OperatingProfit      *decimal.Decimal `json:"operatingProfit"`
	BudgetSales          *decimal.Decimal `json:"budgetSales"`
	BudgetGrossProfit    *decimal.Decimal `json:"budgetGrossProfit"`
	BudgetAdExpense      *decimal.Decimal `json:"budgetAdExpense"`
	SalesVariance        *decimal.Decimal `json:"salesVariance"`
	GrossProfitVariance  *decimal.Decimal `json:"grossProfitVariance"`
	SalesAchievementRate *float64         `json:"salesAchievementRate"`
}
