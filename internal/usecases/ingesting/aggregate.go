package ingesting

import (
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Accumulator soma as linhas de um mesmo produto pai dentro de um lote
type Accumulator struct {
	ProductCode        string
	Quantity           int64
	GrossAmountInclTax decimal.Decimal
	SampleProductName  string
	SampleSKU          string
	// OnlyEmpty fica true enquanto todas as linhas do código tiverem quantidade e valor zerados
	OnlyEmpty bool
}

// Aggregation vive apenas durante uma importação e mantém a ordem em que os códigos apareceram
type Aggregation struct {
	order  []string
	byCode map[string]*Accumulator
}

func NewAggregation() *Aggregation {
	return &Aggregation{
		order:  make([]string, 0),
		byCode: make(map[string]*Accumulator),
	}
}

// Add acumula a linha no código informado. Nome e SKU de amostra vêm da primeira linha.
func (a *Aggregation) Add(code string, item domain.LineItem) {
	acc, ok := a.byCode[code]
	if !ok {
		acc = &Accumulator{
			ProductCode:        code,
			GrossAmountInclTax: decimal.Zero,
			SampleProductName:  item.ProductName,
			SampleSKU:          item.SKU,
			OnlyEmpty:          true,
		}
		a.byCode[code] = acc
		a.order = append(a.order, code)
	}

	if !isEmptyLine(item) {
		acc.OnlyEmpty = false
	}

	acc.Quantity += item.Quantity
	acc.GrossAmountInclTax = acc.GrossAmountInclTax.Add(item.SubtotalInclTax)
}

func (a *Aggregation) Get(code string) (*Accumulator, bool) {
	acc, ok := a.byCode[code]
	return acc, ok
}

func (a *Aggregation) Codes() []string {
	codes := make([]string, len(a.order))
	copy(codes, a.order)
	return codes
}

func (a *Aggregation) Entries() []*Accumulator {
	entries := make([]*Accumulator, 0, len(a.order))
	for _, code := range a.order {
		entries = append(entries, a.byCode[code])
	}
	return entries
}

func (a *Aggregation) Len() int {
	return len(a.order)
}

// PrepareStats conta as linhas descartadas antes da agregação
type PrepareStats struct {
	Cancelled int
	Excluded  int
	Empty     int
}

func isEmptyLine(item domain.LineItem) bool {
	return item.Quantity == 0 && item.SubtotalInclTax.IsZero()
}

// Prepare descarta canceladas e excluídas, normaliza o SKU e agrega por produto pai.
// Linhas vazias ainda entram na agregação para que códigos desconhecidos virem candidatos;
// quem grava os registros ignora acumuladores com OnlyEmpty.
func Prepare(items []domain.LineItem, keywords []*domain.ExclusionKeyword) (*Aggregation, PrepareStats) {
	aggregation := NewAggregation()
	stats := PrepareStats{}

	for _, item := range items {
		if item.Cancelled {
			stats.Cancelled++
			continue
		}

		if IsExcluded(item.SKU, keywords) {
			stats.Excluded++
			continue
		}

		if isEmptyLine(item) {
			stats.Empty++
		}

		aggregation.Add(Normalize(item.SKU), item)
	}

	return aggregation, stats
}
