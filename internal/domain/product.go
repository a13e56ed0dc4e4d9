package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypeOwn       ProductType = "own"
	ProductTypePurchased ProductType = "purchased"
)

type ManagementStatus string

const (
	ManagementStatusManaged   ManagementStatus = "managed"
	ManagementStatusUnmanaged ManagementStatus = "unmanaged"
)

// Product é o cadastro mestre; ProductCode nunca muda depois de criado
type Product struct {
	ProductCode       string           `json:"product_code"`
	ProductName       string           `json:"product_name"`
	SalesPriceExclTax decimal.Decimal  `json:"sales_price_excl_tax"`
	CostExclTax       decimal.Decimal  `json:"cost_excl_tax"`
	ProductType       ProductType      `json:"product_type"`
	ManagementStatus  ManagementStatus `json:"management_status"`
	CategoryID        *int             `json:"category_id"`
	ASIN              *string          `json:"asin"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func (p *Product) IsManaged() bool {
	return p.ManagementStatus == ManagementStatusManaged
}

// IsIncomplete indica preço ou custo ainda não preenchidos
func (p *Product) IsIncomplete() bool {
	return p.CostExclTax.IsZero() || p.SalesPriceExclTax.IsZero()
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SalesChannel struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
