package model

type Expense struct {
	ID            int64   `db:"id" json:"id"`
	Category      string  `db:"category" json:"category"`
	Amount        float64 `db:"amount" json:"amount"`
	PaymentMethod *string `db:"payment_method" json:"payment_method"`
	Fee           float64 `db:"fee" json:"fee"`
	Date          string  `db:"date" json:"date"`
	Supplier      *string `db:"supplier" json:"supplier"`
	Note          *string `db:"note" json:"note"`
}
