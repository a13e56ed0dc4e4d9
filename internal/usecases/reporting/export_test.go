package reporting

import (
	"bytes"
	"testing"

	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRenderComparison(t *testing.T) {
	actual := dec(1500)
	rate := 50.0

	content, err := renderComparison([]*domain.PeriodComparison{
		{
			PeriodYm: "2024-05",
			Data: []*domain.ComparisonItem{
				{ID: "1", Name: "フレーム", ActualSales: &actual, AchievementRate: &rate},
				{ID: "unclassified", Name: "未分類"},
			},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(comparisonSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, comparisonHeaders, rows[0])
	assert.Equal(t, "2024-05", rows[1][0])
	assert.Equal(t, "フレーム", rows[1][2])
	assert.Equal(t, "1500", rows[1][3])
	assert.Equal(t, "50", rows[1][12])

	// Valores nulos ficam como células vazias
	assert.Equal(t, []string{"2024-05", "unclassified", "未分類"}, rows[2])
}
