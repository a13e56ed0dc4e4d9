package ingesting

import (
	"context"
	"fmt"

	"github.com/rinori/sales-ledger-api/infrastructure/repository"
	"github.com/rinori/sales-ledger-api/pkg/log"
	"github.com/rinori/sales-ledger-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// DefaultTaxMultiplier é usado quando não há taxa vigente para o período
var DefaultTaxMultiplier = decimal.RequireFromString("1.10")

type TaxResolver struct {
	rates    repository.TaxRateRepository
	fallback decimal.Decimal
}

func NewTaxResolver(rates repository.TaxRateRepository, fallback decimal.Decimal) *TaxResolver {
	if fallback.LessThanOrEqual(decimal.Zero) {
		fallback = DefaultTaxMultiplier
	}

	return &TaxResolver{
		rates:    rates,
		fallback: fallback,
	}
}

// ResolveMultiplier retorna 1 + taxa da vigência com maior início <= periodYm
func (r *TaxResolver) ResolveMultiplier(ctx context.Context, periodYm string) (decimal.Decimal, error) {
	rate, err := r.rates.GetEffective(ctx, periodYm)
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao buscar taxa de imposto: %w", err)
	}

	if rate == nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"period_ym":  periodYm,
			"multiplier": r.fallback.String(),
		}).Warn("ingest: nenhuma taxa vigente para o período, usando multiplicador padrão")
		return r.fallback, nil
	}

	return rate.Multiplier(), nil
}

// ToExclTax converte o total com imposto para o valor sem imposto, arredondado meio para cima.
// Deve ser chamado uma vez por produto agregado, nunca por linha.
func ToExclTax(amountInclTax, multiplier decimal.Decimal) decimal.Decimal {
	return utils.RoundHalfUp(amountInclTax.Div(multiplier))
}
