package domain

import "github.com/shopspring/decimal"

// TaxRate vale a partir de StartYm até a próxima vigência
type TaxRate struct {
	ID      int             `json:"id"`
	StartYm string          `json:"start_ym"`
	Rate    decimal.Decimal `json:"rate"`
}

func (t *TaxRate) Multiplier() decimal.Decimal {
	return decimal.NewFromInt(1).Add(t.Rate)
}
