package reporting

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// bucket acumula um item da dimensão em um período. present distingue "sem linha" de "zero".
type bucket struct {
	sales       decimal.Decimal
	grossProfit decimal.Decimal
	quantity    int64
	present     bool
}

func (b *bucket) add(sales, grossProfit decimal.Decimal, quantity int64) {
	b.sales = b.sales.Add(sales)
	b.grossProfit = b.grossProfit.Add(grossProfit)
	b.quantity += quantity
	b.present = true
}

type bucketKey struct {
	period string
	itemID string
}

type buckets map[bucketKey]*bucket

func (bs buckets) get(period, itemID string) *bucket {
	key := bucketKey{period: period, itemID: itemID}
	b, ok := bs[key]
	if !ok {
		b = &bucket{sales: decimal.Zero, grossProfit: decimal.Zero}
		bs[key] = b
	}
	return b
}

func (bs buckets) lookup(period, itemID string) (*bucket, bool) {
	b, ok := bs[bucketKey{period: period, itemID: itemID}]
	return b, ok
}

type comparisonBuilder struct {
	query      domain.ComparisonQuery
	categories map[int]*domain.Category

	actual buckets
	prior  buckets
	budget buckets

	names map[string]string
	seen  map[string]bool
}

func newComparisonBuilder(query domain.ComparisonQuery, categories map[int]*domain.Category) *comparisonBuilder {
	if categories == nil {
		categories = make(map[int]*domain.Category)
	}

	return &comparisonBuilder{
		query:      query,
		categories: categories,
		actual:     make(buckets),
		prior:      make(buckets),
		budget:     make(buckets),
		names:      make(map[string]string),
		seen:       make(map[string]bool),
	}
}

// itemID devolve o id do item da dimensão ao qual o produto pertence
func (c *comparisonBuilder) itemID(productCode, productName string, categoryID *int) string {
	switch c.query.Dimension {
	case domain.DimensionProduct:
		if _, ok := c.names[productCode]; !ok && productName != "" {
			c.names[productCode] = productName
		}
		return productCode
	case domain.DimensionCategory:
		if categoryID == nil {
			return domain.UnclassifiedItemID
		}
		return strconv.Itoa(*categoryID)
	default:
		return domain.OverallItemID
	}
}

func (c *comparisonBuilder) addActual(fact *domain.SalesFact) {
	id := c.itemID(fact.ProductCode, fact.ProductName, fact.CategoryID)
	c.seen[id] = true
	c.actual.get(fact.PeriodYm, id).add(fact.Sales, fact.GrossProfit, fact.Quantity)
}

// addPrior registra o fato do mês M-12 sob o período corrente correspondente
func (c *comparisonBuilder) addPrior(period string, fact *domain.SalesFact) {
	id := c.itemID(fact.ProductCode, fact.ProductName, fact.CategoryID)
	c.seen[id] = true
	c.prior.get(period, id).add(fact.Sales, fact.GrossProfit, fact.Quantity)
}

func (c *comparisonBuilder) addBudget(budget *domain.MonthlyBudget) {
	id := c.itemID(budget.ProductCode, budget.ProductName, budget.CategoryID)
	c.seen[id] = true
	c.budget.get(budget.PeriodYm, id).add(budget.BudgetSalesExclTax, budget.BudgetGrossProfit, budget.BudgetQuantity)
}

// items lista os ids pedidos ou, sem pedido, todos os que apareceram em algum dado
func (c *comparisonBuilder) items() []string {
	if c.query.Dimension == domain.DimensionOverall {
		return []string{domain.OverallItemID}
	}

	ids := make([]string, 0)
	included := make(map[string]bool)

	if len(c.query.DimensionIDs) > 0 {
		for _, raw := range c.query.DimensionIDs {
			id := raw
			if c.query.Dimension == domain.DimensionCategory && isUnclassifiedID(raw) {
				id = domain.UnclassifiedItemID
			}
			if !included[id] {
				included[id] = true
				ids = append(ids, id)
			}
		}
		return ids
	}

	for id := range c.seen {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return c.less(ids[i], ids[j])
	})

	return ids
}

// less ordena categorias numericamente com "unclassified" no fim; produtos por código
func (c *comparisonBuilder) less(a, b string) bool {
	if c.query.Dimension != domain.DimensionCategory {
		return a < b
	}

	if a == domain.UnclassifiedItemID {
		return false
	}
	if b == domain.UnclassifiedItemID {
		return true
	}

	ai, _ := strconv.Atoi(a)
	bi, _ := strconv.Atoi(b)
	return ai < bi
}

func (c *comparisonBuilder) describe(id string) (string, bool) {
	switch c.query.Dimension {
	case domain.DimensionOverall:
		return domain.OverallItemName, false
	case domain.DimensionProduct:
		if name, ok := c.names[id]; ok {
			return name, false
		}
		return id, false
	}

	if id == domain.UnclassifiedItemID {
		return domain.UnclassifiedName, false
	}

	categoryID, _ := strconv.Atoi(id)
	if category, ok := c.categories[categoryID]; ok {
		return category.Name, false
	}

	return fmt.Sprintf("不明(%s)", id), true
}

func (c *comparisonBuilder) build(periods []string) []*domain.PeriodComparison {
	ids := c.items()
	filtered := c.query.ChannelFiltered()

	result := make([]*domain.PeriodComparison, 0, len(periods))
	for _, period := range periods {
		data := make([]*domain.ComparisonItem, 0, len(ids))

		for _, id := range ids {
			name, anomaly := c.describe(id)
			item := &domain.ComparisonItem{
				ID:      id,
				Name:    name,
				Anomaly: anomaly,
			}

			actual, hasActual := c.actual.lookup(period, id)
			if hasActual {
				item.ActualSales = decimalPtr(actual.sales)
				item.ActualGrossProfit = decimalPtr(actual.grossProfit)
				item.ActualQuantity = int64Ptr(actual.quantity)
			}

			if prior, ok := c.prior.lookup(period, id); ok {
				item.PrevYearSales = decimalPtr(prior.sales)
				item.PrevYearGrossProfit = decimalPtr(prior.grossProfit)
				item.PrevYearQuantity = int64Ptr(prior.quantity)
			}

			if budget, ok := c.budget.lookup(period, id); ok && !filtered {
				item.BudgetSales = decimalPtr(budget.sales)
				item.BudgetGrossProfit = decimalPtr(budget.grossProfit)
				item.BudgetQuantity = int64Ptr(budget.quantity)

				actualSales := decimal.Zero
				if hasActual {
					actualSales = actual.sales
				}
				item.AchievementRate = achievementRate(actualSales, budget.sales)
			}

			data = append(data, item)
		}

		result = append(result, &domain.PeriodComparison{
			PeriodYm: period,
			Data:     data,
		})
	}

	return result
}

// achievementRate só é chamado quando existe linha de orçamento: orçamento zero vira 0
func achievementRate(actual, budget decimal.Decimal) *float64 {
	rate := 0.0
	if budget.GreaterThan(decimal.Zero) {
		rate = utils.Percentage(actual, budget)
	}
	return &rate
}

func isUnclassifiedID(id string) bool {
	return id == domain.UnclassifiedItemID || id == "null"
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func int64Ptr(i int64) *int64 {
	return &i
}
