package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundHalfUp arredonda para inteiro com meio para cima (2.5 → 3, -2.5 → -2)
func RoundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// Percentage calcula part/total*100 com duas casas; total deve ser diferente de zero
func Percentage(part, total decimal.Decimal) float64 {
	rate, _ := part.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	return RoundWithTwoDecimalPlace(rate)
}
