package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBudget é o orçamento por produto; não tem canal de venda
type MonthlyBudget struct {
	PeriodYm           string          `json:"period_ym"`
	ProductCode        string          `json:"product_code"`
	BudgetQuantity     int64           `json:"budget_quantity"`
	BudgetSalesExclTax decimal.Decimal `json:"budget_sales_excl_tax"`
	BudgetCostExclTax  decimal.Decimal `json:"budget_cost_excl_tax"`
	BudgetGrossProfit  decimal.Decimal `json:"budget_gross_profit"`
	ProductName        string          `json:"product_name"`
	CategoryID         *int            `json:"category_id"`
}

type AdBudget struct {
	PeriodYm string          `json:"period_ym"`
	Amount   decimal.Decimal `json:"amount"`
}

type ManagementBudget struct {
	PeriodYm    string          `json:"period_ym"`
	Sales       decimal.Decimal `json:"sales"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
}

type AdExpense struct {
	ID          int             `json:"id"`
	ExpenseDate time.Time       `json:"expense_date"`
	Amount      decimal.Decimal `json:"amount"`
}
