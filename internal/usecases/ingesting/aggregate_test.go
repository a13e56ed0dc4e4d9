package ingesting

import (
	"testing"

	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare(t *testing.T) {
	keywords := []*domain.ExclusionKeyword{
		{Keyword: "SAMPLE", MatchType: domain.MatchTypeStartsWith},
	}

	items := []domain.LineItem{
		{SKU: "RINO-FR010-X-BLK", ProductName: "Frame preto", Quantity: 2, SubtotalInclTax: decimal.NewFromInt(9900)},
		{SKU: "RINO-FR010-X-WHT", ProductName: "Frame branco", Quantity: 1, SubtotalInclTax: decimal.NewFromInt(9834)},
		{SKU: "RINODO002BLK", ProductName: "Door", Quantity: 1, SubtotalInclTax: decimal.NewFromInt(1100)},
		{SKU: "RINO-FR010-X-RED", Quantity: 5, SubtotalInclTax: decimal.NewFromInt(500), Cancelled: true},
		{SKU: "SAMPLE-001", Quantity: 1, SubtotalInclTax: decimal.NewFromInt(100)},
		{SKU: "RINODO002WHT", Quantity: 0, SubtotalInclTax: decimal.Zero},
		{SKU: "", Quantity: 1, SubtotalInclTax: decimal.NewFromInt(100)},
	}

	aggregation, stats := Prepare(items, keywords)

	assert.Equal(t, PrepareStats{Cancelled: 1, Excluded: 2, Empty: 1}, stats)
	assert.Equal(t, []string{"RINO-FR010", "RINODO002"}, aggregation.Codes())

	frame, ok := aggregation.Get("RINO-FR010")
	require.True(t, ok)
	assert.Equal(t, int64(3), frame.Quantity)
	assert.True(t, decimal.NewFromInt(19734).Equal(frame.GrossAmountInclTax))
	assert.Equal(t, "Frame preto", frame.SampleProductName)
	assert.Equal(t, "RINO-FR010-X-BLK", frame.SampleSKU)

	door, ok := aggregation.Get("RINODO002")
	require.True(t, ok)
	assert.Equal(t, int64(1), door.Quantity)
	assert.False(t, door.OnlyEmpty)
	assert.False(t, frame.OnlyEmpty)
}

func TestPrepare_EmptyRowsStillReachAggregation(t *testing.T) {
	items := []domain.LineItem{
		{SKU: "RINO-NEW010-S", ProductName: "Novo", Quantity: 0, SubtotalInclTax: decimal.Zero},
		{SKU: "RINO-NEW010-M", Quantity: 0, SubtotalInclTax: decimal.Zero},
	}

	aggregation, stats := Prepare(items, nil)

	assert.Equal(t, 2, stats.Empty)
	assert.Equal(t, []string{"RINO-NEW010"}, aggregation.Codes())

	entry, ok := aggregation.Get("RINO-NEW010")
	require.True(t, ok)
	assert.True(t, entry.OnlyEmpty)
	assert.Equal(t, "RINO-NEW010-S", entry.SampleSKU)
}

func TestPrepare_KeepsZeroQuantityWithAmount(t *testing.T) {
	items := []domain.LineItem{
		{SKU: "RINO-FR010", Quantity: 0, SubtotalInclTax: decimal.NewFromInt(-500)},
	}

	aggregation, stats := Prepare(items, nil)

	assert.Equal(t, 0, stats.Empty)
	require.Equal(t, 1, aggregation.Len())
	assert.False(t, aggregation.Entries()[0].OnlyEmpty)
}

func TestAggregation_EntriesFollowInsertionOrder(t *testing.T) {
	aggregation := NewAggregation()
	aggregation.Add("B", domain.LineItem{SKU: "B", Quantity: 1, SubtotalInclTax: decimal.NewFromInt(1)})
	aggregation.Add("A", domain.LineItem{SKU: "A", Quantity: 1, SubtotalInclTax: decimal.NewFromInt(1)})
	aggregation.Add("B", domain.LineItem{SKU: "B", Quantity: 2, SubtotalInclTax: decimal.NewFromInt(2)})

	entries := aggregation.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].ProductCode)
	assert.Equal(t, int64(3), entries[0].Quantity)
	assert.Equal(t, "A", entries[1].ProductCode)
}
