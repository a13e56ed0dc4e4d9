package ingesting

import (
	"fmt"
	"strconv"
	"strings"

	nedomain "github.com/rinori/sales-ledger-api/infrastructure/integrator/nextengine/domain"
	"github.com/rinori/sales-ledger-api/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVRow é uma linha do CSV de pedidos já interpretada pelo cliente
type CSVRow struct {
	SKU         string          `json:"sku"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Cancelled   bool            `json:"cancelled"`
}

// AmazonRow é uma linha do relatório de negócios da Amazon, por ASIN pai
type AmazonRow struct {
	ParentASIN string          `json:"parentAsin"`
	Title      string          `json:"title"`
	Units      int64           `json:"units"`
	UnitsB2B   int64           `json:"unitsB2b"`
	Sales      decimal.Decimal `json:"sales"`
	SalesB2B   decimal.Decimal `json:"salesB2b"`
}

func FromCSVRows(rows []CSVRow) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.LineItem{
			SKU:             row.SKU,
			ProductName:     row.ProductName,
			Quantity:        row.Quantity,
			SubtotalInclTax: row.Subtotal,
			Cancelled:       row.Cancelled,
		})
	}
	return items
}

// FromAmazonRows desconta as vendas B2B (mínimo zero). O SKU fica vazio até o ASIN
// ser resolvido pelo cadastro de produtos.
func FromAmazonRows(rows []AmazonRow) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(rows))
	for _, row := range rows {
		asin := strings.TrimSpace(row.ParentASIN)
		if asin == "" {
			continue
		}

		quantity := row.Units - row.UnitsB2B
		if quantity < 0 {
			quantity = 0
		}

		items = append(items, domain.LineItem{
			ASIN:            asin,
			ProductName:     row.Title,
			Quantity:        quantity,
			SubtotalInclTax: decimal.Max(decimal.Zero, row.Sales.Sub(row.SalesB2B)),
		})
	}
	return items
}

// FromNextEngineRows converte as linhas da API de pedidos. Sem subtotal, usa preço unitário × quantidade.
func FromNextEngineRows(rows []nedomain.OrderRow) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(rows))
	for _, row := range rows {
		quantity, err := parseInt(row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("linha %s: quantidade inválida %q: %w", row.RowNo, row.Quantity, err)
		}

		subtotal, err := parseAmount(row.SubTotalPrice)
		if err != nil {
			return nil, fmt.Errorf("linha %s: subtotal inválido %q: %w", row.RowNo, row.SubTotalPrice, err)
		}

		if strings.TrimSpace(row.SubTotalPrice) == "" {
			unitPrice, err := parseAmount(row.UnitPrice)
			if err != nil {
				return nil, fmt.Errorf("linha %s: preço unitário inválido %q: %w", row.RowNo, row.UnitPrice, err)
			}
			subtotal = unitPrice.Mul(decimal.NewFromInt(quantity))
		}

		items = append(items, domain.LineItem{
			SKU:             row.GoodsID,
			ProductName:     row.GoodsName,
			Quantity:        quantity,
			SubtotalInclTax: subtotal,
			Cancelled:       strings.TrimSpace(row.CancelFlag) == "1",
		})
	}
	return items, nil
}

func parseInt(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseInt(value, 10, 64)
}

func parseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}
