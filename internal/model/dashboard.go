package model

import "github.com/shopspring/decimal"

// Summary holds the totals for one date window.
type Summary struct {
	Since         string          `json:"since"`
	SalesTotal    decimal.Decimal `json:"sales_total"`
	SalesFee      decimal.Decimal `json:"sales_fee"`
	ExpensesTotal decimal.Decimal `json:"expenses_total"`
	ExpensesFee   decimal.Decimal `json:"expenses_fee"`
	Profit        decimal.Decimal `json:"profit"`
}

type BestSeller struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Qty       int64           `json:"qty"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type ExpenseCategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// TrendPoint is one calendar day. Sales are net of fees, expenses include fees.
type TrendPoint struct {
	Day      string          `json:"day"`   // YYYY-MM-DD
	Label    string          `json:"label"` // MM-DD
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
	// Row counts. A sale and its return net to zero but still count.
	SaleCount    int `json:"sale_count"`
	ExpenseCount int `json:"expense_count"`
}

// Empty reports whether nothing was logged on the day.
func (p TrendPoint) Empty() bool {
	return p.SaleCount == 0 && p.ExpenseCount == 0
}

type Dashboard struct {
	Today            TrendPoint             `json:"today"`
	Summary7d        Summary                `json:"summary_7d"`
	Trend            []TrendPoint           `json:"trend"`
	BestSellers      []BestSeller           `json:"best_sellers"`
	ExpenseBreakdown []ExpenseCategoryTotal `json:"expense_breakdown"`
	MarginWarnings   []MarginWarning        `json:"margin_warnings"`
	LowStock         []StockLevel           `json:"low_stock"`
}
