package domain

import "github.com/shopspring/decimal"

// LineItem é a forma única de uma linha de venda, qualquer que seja a origem
// (CSV manual, CSV da Amazon ou API de pedidos).
type LineItem struct {
	SKU             string
	ProductName     string
	Quantity        int64
	SubtotalInclTax decimal.Decimal
	Cancelled       bool
	// ASIN preenchido apenas nas linhas da Amazon; o código é resolvido pelo cadastro
	ASIN string
}
