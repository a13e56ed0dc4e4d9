package ingesting

import (
	"testing"

	nedomain "github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAmazonRows(t *testing.T) {
	rows := []AmazonRow{
		{
			ParentASIN: "B0ABC12345",
			Title:      "Frame",
			Units:      10,
			UnitsB2B:   3,
			Sales:      decimal.NewFromInt(11000),
			SalesB2B:   decimal.NewFromInt(3300),
		},
		{
			// B2B maior que o total nunca gera valor negativo
			ParentASIN: "B0XYZ99999",
			Units:      1,
			UnitsB2B:   2,
			Sales:      decimal.NewFromInt(100),
			SalesB2B:   decimal.NewFromInt(200),
		},
		{ParentASIN: "  ", Units: 1, Sales: decimal.NewFromInt(100)},
	}

	items := FromAmazonRows(rows)

	require.Len(t, items, 2)
	assert.Equal(t, "B0ABC12345", items[0].ASIN)
	assert.Empty(t, items[0].SKU)
	assert.Equal(t, int64(7), items[0].Quantity)
	assert.True(t, decimal.NewFromInt(7700).Equal(items[0].SubtotalInclTax))

	assert.Equal(t, int64(0), items[1].Quantity)
	assert.True(t, items[1].SubtotalInclTax.IsZero())
}

func TestFromNextEngineRows(t *testing.T) {
	rows := []nedomain.OrderRow{
		{RowNo: "1", GoodsID: "RINO-FR010-X-BLK", GoodsName: "Frame", Quantity: "2", UnitPrice: "4950", SubTotalPrice: "9900", CancelFlag: "0"},
		{RowNo: "2", GoodsID: "RINODO002BLK", Quantity: "3", UnitPrice: "1100", SubTotalPrice: ""},
		{RowNo: "3", GoodsID: "RINODO002WHT", Quantity: "1", SubTotalPrice: "1100", CancelFlag: "1"},
	}

	items, err := FromNextEngineRows(rows)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.True(t, decimal.NewFromInt(9900).Equal(items[0].SubtotalInclTax))
	assert.False(t, items[0].Cancelled)
	assert.True(t, decimal.NewFromInt(3300).Equal(items[1].SubtotalInclTax))
	assert.True(t, items[2].Cancelled)
}

func TestFromNextEngineRows_InvalidQuantity(t *testing.T) {
	_, err := FromNextEngineRows([]nedomain.OrderRow{{RowNo: "7", Quantity: "dois"}})

	assert.ErrorContains(t, err, "linha 7")
}

func TestFromCSVRows(t *testing.T) {
	items := FromCSVRows([]CSVRow{
		{SKU: "RINO-FR010-X", ProductName: "Frame", Quantity: 1, Subtotal: decimal.NewFromInt(1100), Cancelled: true},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "RINO-FR010-X", items[0].SKU)
	assert.True(t, items[0].Cancelled)
}
