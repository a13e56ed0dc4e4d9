package ingesting

import (
	"regexp"
	"strings"

	"github.com/rinori/sales-ledger-api/internal/domain"
)

var (
	// RINO-FR010-X-BLK → RINO-FR010
	hyphenatedParentCode = regexp.MustCompile(`^(RINO-[A-Z0-9]+)`)
	// RINODO002BLK → RINODO002
	compactParentCode = regexp.MustCompile(`^(RINO[A-Z]+[0-9]{3,4})`)
)

// IsExcluded verifica as palavras de exclusão contra o SKU bruto, antes da conversão.
// A comparação diferencia maiúsculas de minúsculas. SKU vazio é sempre excluído.
func IsExcluded(sku string, keywords []*domain.ExclusionKeyword) bool {
	if strings.TrimSpace(sku) == "" {
		return true
	}

	for _, keyword := range keywords {
		if keyword == nil || keyword.Keyword == "" {
			continue
		}

		switch keyword.MatchType {
		case domain.MatchTypeStartsWith:
			if strings.HasPrefix(sku, keyword.Keyword) {
				return true
			}
		case domain.MatchTypeContains:
			if strings.Contains(sku, keyword.Keyword) {
				return true
			}
		}
	}

	return false
}

// Normalize reduz o SKU de uma variação (tamanho, cor) ao código do produto pai
func Normalize(sku string) string {
	trimmed := strings.TrimSpace(sku)

	code := trimmed
	if match := hyphenatedParentCode.FindStringSubmatch(trimmed); match != nil {
		code = match[1]
	} else if match := compactParentCode.FindStringSubmatch(trimmed); match != nil {
		code = match[1]
	}

	return strings.ToUpper(strings.TrimSpace(code))
}
