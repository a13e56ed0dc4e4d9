package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalesRecord struct {
	ID                 int64           `json:"id"`
	ProductCode        string          `json:"product_code"`
	PeriodYm           string          `json:"period_ym"`
	SalesDate          time.Time       `json:"sales_date"`
	Quantity           int64           `json:"quantity"`
	SalesAmountExclTax decimal.Decimal `json:"sales_amount_excl_tax"`
	CostAmountExclTax  decimal.Decimal `json:"cost_amount_excl_tax"`
	GrossProfit        decimal.Decimal `json:"gross_profit"`
	SalesChannelID     int             `json:"sales_channel_id"`
	ExternalOrderID    string          `json:"external_order_id"`
	ImportHistoryID    int64           `json:"import_history_id"`
	CreatedByUserID    int             `json:"created_by_user_id"`
	CreatedAt          time.Time       `json:"created_at"`
}

// NewSalesRecord monta o registro e calcula o lucro bruto a partir de venda e custo.
// O lucro bruto não é editado depois disso.
func NewSalesRecord(productCode, periodYm string, salesDate time.Time, quantity int64, sales, cost decimal.Decimal) *SalesRecord {
	return &SalesRecord{
		ProductCode:        productCode,
		PeriodYm:           periodYm,
		SalesDate:          salesDate,
		Quantity:           quantity,
		SalesAmountExclTax: sales,
		CostAmountExclTax:  cost,
		GrossProfit:        sales.Sub(cost),
	}
}
