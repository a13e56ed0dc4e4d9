package ingesting

import (
	"context"
	"errors"
	"testing"

	"github.com/rinori/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTaxResolver_ResolveMultiplier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTaxRepo := mocks.NewMockTaxRateRepository(ctrl)
	resolver := NewTaxResolver(mockTaxRepo, decimal.Zero)
	ctx := context.Background()

	// Vigências: 8% até 2019-09, 10% a partir de 2019-10
	mockTaxRepo.EXPECT().
		GetEffective(gomock.Any(), "2019-09").
		Return(&domain.TaxRate{StartYm: "2014-04", Rate: decimal.RequireFromString("0.08")}, nil)
	mockTaxRepo.EXPECT().
		GetEffective(gomock.Any(), "2019-10").
		Return(&domain.TaxRate{StartYm: "2019-10", Rate: decimal.RequireFromString("0.10")}, nil)

	september, err := resolver.ResolveMultiplier(ctx, "2019-09")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.08").Equal(september))

	october, err := resolver.ResolveMultiplier(ctx, "2019-10")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1.10").Equal(october))
}

func TestTaxResolver_Fallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTaxRepo := mocks.NewMockTaxRateRepository(ctrl)

	t.Run("Sem vigência usa o multiplicador configurado", func(t *testing.T) {
		resolver := NewTaxResolver(mockTaxRepo, decimal.RequireFromString("1.08"))
		mockTaxRepo.EXPECT().GetEffective(gomock.Any(), "2000-01").Return(nil, nil)

		multiplier, err := resolver.ResolveMultiplier(context.Background(), "2000-01")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("1.08").Equal(multiplier))
	})

	t.Run("Multiplicador inválido cai no padrão", func(t *testing.T) {
		resolver := NewTaxResolver(mockTaxRepo, decimal.NewFromInt(-1))
		mockTaxRepo.EXPECT().GetEffective(gomock.Any(), "2000-01").Return(nil, nil)

		multiplier, err := resolver.ResolveMultiplier(context.Background(), "2000-01")
		require.NoError(t, err)
		assert.True(t, DefaultTaxMultiplier.Equal(multiplier))
	})

	t.Run("Erro do repositório é propagado", func(t *testing.T) {
		resolver := NewTaxResolver(mockTaxRepo, decimal.Zero)
		mockTaxRepo.EXPECT().GetEffective(gomock.Any(), "2024-01").Return(nil, errors.New("conexão perdida"))

		_, err := resolver.ResolveMultiplier(context.Background(), "2024-01")
		assert.Error(t, err)
	})
}

func TestToExclTax(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		multiplier string
		expected   string
	}{
		{name: "Divisão exata", amount: "19734", multiplier: "1.10", expected: "17940"},
		{name: "Meio arredonda para cima", amount: "11.55", multiplier: "1.10", expected: "11"},
		{name: "Fração abaixo de meio arredonda para baixo", amount: "105", multiplier: "1.10", expected: "95"},
		{name: "Fração acima de meio arredonda para cima", amount: "1000", multiplier: "1.08", expected: "926"},
		{name: "Zero continua zero", amount: "0", multiplier: "1.10", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToExclTax(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.multiplier))
			assert.Equal(t, tt.expected, result.String())
		})
	}
}
