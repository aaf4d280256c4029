package model

import "github.com/shopspring/decimal"

// Sale is one sold line. A return is stored as another Sale with negated qty.
type Sale struct {
	ID            int64   `db:"id" json:"id"`
	ProductID     int64   `db:"product_id" json:"product_id"`
	Qty           int64   `db:"qty" json:"qty"`
	SalePrice     float64 `db:"sale_price" json:"sale_price"`
	Channel       *string `db:"channel" json:"channel"`
	PaymentMethod *string `db:"payment_method" json:"payment_method"`
	Fee           float64 `db:"fee" json:"fee"`
	Date          string  `db:"date" json:"date"`
	Note          *string `db:"note" json:"note"`
}

// SaleWithProduct is a sale joined with the product columns history lists show.
type SaleWithProduct struct {
	Sale
	Name  string      `db:"name" json:"name"`
	Type  ProductType `db:"type" json:"type"`
	Color *string     `db:"color" json:"color"`
	Size  *string     `db:"size" json:"size"`
}

// SaleQuote previews a sale before it is recorded.
type SaleQuote struct {
	ProductID    int64           `json:"product_id"`
	Qty          int64           `json:"qty"`
	Revenue      decimal.Decimal `json:"revenue"`
	SuggestedFee decimal.Decimal `json:"suggested_fee"`
	Total        decimal.Decimal `json:"total"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Margin       decimal.Decimal `json:"margin"`
	Warning      QuoteWarning    `json:"warning,omitempty"`
}

// QuoteWarning flags a quote whose margin is negative or under a tenth of
// the line's cost. Empty means the margin is healthy.
type QuoteWarning string

const (
	QuoteUnderCost  QuoteWarning = "under_cost"
	QuoteThinMargin QuoteWarning = "thin_margin"
)
