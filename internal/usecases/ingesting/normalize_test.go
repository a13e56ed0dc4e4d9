package ingesting

import (
	"testing"

	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		sku      string
		expected string
	}{
		{name: "Código com hífen e variação", sku: "RINO-FR010-X-BLK", expected: "RINO-FR010"},
		{name: "Código com hífen sem variação", sku: "RINO-FR010", expected: "RINO-FR010"},
		{name: "Código compacto com cor", sku: "RINODO002BLK", expected: "RINODO002"},
		{name: "Código compacto com quatro dígitos", sku: "RINOTS1234WHT", expected: "RINOTS1234"},
		{name: "SKU fora do padrão é mantido em maiúsculas", sku: "abc-123", expected: "ABC-123"},
		{name: "Espaços nas pontas são removidos", sku: "  RINO-FR010-S  ", expected: "RINO-FR010"},
		{name: "Minúsculas não casam com o padrão", sku: "rino-fr010-x", expected: "RINO-FR010-X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.sku))
		})
	}
}

func TestIsExcluded(t *testing.T) {
	keywords := []*domain.ExclusionKeyword{
		{ID: 1, Keyword: "SAMPLE", MatchType: domain.MatchTypeStartsWith},
		{ID: 2, Keyword: "NOVELTY", MatchType: domain.MatchTypeContains},
	}

	tests := []struct {
		name     string
		sku      string
		expected bool
	}{
		{name: "Prefixo casa", sku: "SAMPLE-001", expected: true},
		{name: "Prefixo no meio não casa", sku: "X-SAMPLE-001", expected: false},
		{name: "Contém casa em qualquer posição", sku: "RINO-NOVELTY-01", expected: true},
		{name: "Diferencia maiúsculas de minúsculas", sku: "sample-001", expected: false},
		{name: "SKU vazio é sempre excluído", sku: "   ", expected: true},
		{name: "SKU comum passa", sku: "RINO-FR010-X", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsExcluded(tt.sku, keywords))
		})
	}
}

func TestIsExcluded_IgnoresEmptyKeyword(t *testing.T) {
	keywords := []*domain.ExclusionKeyword{
		{Keyword: "", MatchType: domain.MatchTypeContains},
		nil,
	}

	assert.False(t, IsExcluded("RINO-FR010", keywords))
}
