package dto

type AddExpenseInput struct {
	Category      string  `json:"category" validate:"required,max=80"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Fee           float64 `json:"fee" validate:"gte=0"`
	Date          string  `json:"date,omitempty" validate:"omitempty,isodate"`
	Supplier      *string `json:"supplier,omitempty"`
	Note          *string `json:"note,omitempty"`
}

// ExpensePatch is a merge patch: nil fields keep their stored value.
type ExpensePatch struct {
	Category      *string  `json:"category,omitempty" validate:"omitempty,min=1,max=80"`
	Amount        *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Fee           *float64 `json:"fee,omitempty" validate:"omitempty,gte=0"`
	Date          *string  `json:"date,omitempty" validate:"omitempty,isodate"`
	Supplier      *string  `json:"supplier,omitempty"`
	Note          *string  `json:"note,omitempty"`
}

func (p *ExpensePatch) Empty() bool {
	return p == nil || (p.Category == nil && p.Amount == nil && p.PaymentMethod == nil &&
		p.Fee == nil && p.Date == nil && p.Supplier == nil && p.Note == nil)
}
