package migration

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaTables(t *testing.T) {
	tables := []string{
		"users",
		"sales_channels",
		"categories",
		"products",
		"tax_rates",
		"exclusion_keywords",
		"ne_shop_mappings",
		"ne_auth",
		"import_histories",
		"sales_records",
		"new_product_candidates",
		"monthly_budgets",
		"management_budgets",
		"ad_budgets",
		"ad_expenses",
	}

	for _, table := range tables {
		t.Run(table, func(t *testing.T) {
			pattern := regexp.MustCompile(`CREATE TABLE IF NOT EXISTS ` + table + ` \(`)
			assert.True(t, pattern.MatchString(Schema()), "tabela %s ausente do schema", table)
		})
	}
}

func TestSchemaPrefixIndex(t *testing.T) {
	assert.Contains(t, Schema(), "idx_sales_records_channel_period_ext")
	assert.Contains(t, Schema(), "(sales_channel_id, period_ym, external_order_id text_pattern_ops)")
}
