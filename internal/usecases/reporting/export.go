package reporting

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/rinori/sales-ledger-api/pkg/apiErrors"
	"github.com/rinori/sales-ledger-api/pkg/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const comparisonSheet = "予実比較"

var comparisonHeaders = []string{
	"年月", "ID", "名称",
	"売上実績", "売上予算", "売上前年",
	"粗利実績", "粗利予算", "粗利前年",
	"数量実績", "数量予算", "数量前年",
	"達成率(%)",
}

// ExportComparison gera o xlsx de orçado vs. realizado. Células nulas ficam vazias.
func (s *Service) ExportComparison(ctx context.Context, query domain.ComparisonQuery) ([]byte, string, error) {
	comparisons, err := s.Compare(ctx, query)
	if err != nil {
		return nil, "", err
	}

	content, err := renderComparison(comparisons)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("report: falha ao gerar planilha")
		return nil, "", &ReportError{Err: ErrExportFailed, Code: apiErrors.ErrInternalServer, Details: err.Error()}
	}

	filename := fmt.Sprintf("budget_vs_actual_%s_%s_%s.xlsx", query.Dimension, query.StartYm, query.EndYm)
	return content, filename, nil
}

func renderComparison(comparisons []*domain.PeriodComparison) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", comparisonSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	for i, header := range comparisonHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(comparisonSheet, cell, header)
		f.SetCellStyle(comparisonSheet, cell, cell, headerStyle)
	}

	row := 2
	for _, comparison := range comparisons {
		for _, item := range comparison.Data {
			values := []any{
				comparison.PeriodYm,
				item.ID,
				item.Name,
				decimalCell(item.ActualSales),
				decimalCell(item.BudgetSales),
				decimalCell(item.PrevYearSales),
				decimalCell(item.ActualGrossProfit),
				decimalCell(item.BudgetGrossProfit),
				decimalCell(item.PrevYearGrossProfit),
				int64Cell(item.ActualQuantity),
				int64Cell(item.BudgetQuantity),
				int64Cell(item.PrevYearQuantity),
				floatCell(item.AchievementRate),
			}

			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(comparisonSheet, cell, &values); err != nil {
				return nil, err
			}
			row++
		}
	}

	widths := []float64{10, 16, 28, 14, 14, 14, 14, 14, 14, 10, 10, 10, 10}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(comparisonSheet, col, col, width)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decimalCell(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	value, _ := d.Float64()
	return value
}

func int64Cell(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}

func floatCell(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
