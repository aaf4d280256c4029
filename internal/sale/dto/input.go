package dto

// AddSaleInput records one sold line. A negative Qty is accepted and moves
// stock back up, the same way a return does. An empty Date means now.
type AddSaleInput struct {
	ProductID     int64   `json:"product_id" validate:"gt=0"`
	Qty           int64   `json:"qty" validate:"ne=0"`
	SalePrice     float64 `json:"sale_price" validate:"gte=0"`
	Channel       *string `json:"channel,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Fee           float64 `json:"fee" validate:"gte=0"`
	Date          string  `json:"date,omitempty" validate:"omitempty,isodate"`
	Note          *string `json:"note,omitempty"`
}

// SalePatch is a merge patch: nil fields keep their stored value.
type SalePatch struct {
	Qty       *int64   `json:"qty,omitempty" validate:"omitempty,ne=0"`
	SalePrice *float64 `json:"sale_price,omitempty" validate:"omitempty,gte=0"`
	Fee       *float64 `json:"fee,omitempty" validate:"omitempty,gte=0"`
	Note      *string  `json:"note,omitempty"`
}

func (p *SalePatch) Empty() bool {
	return p == nil || (p.Qty == nil && p.SalePrice == nil && p.Fee == nil && p.Note == nil)
}

type QuoteSaleInput struct {
	ProductID     int64   `json:"product_id" validate:"gt=0"`
	Qty           int64   `json:"qty" validate:"gt=0"`
	SalePrice     float64 `json:"sale_price" validate:"gte=0"`
	Channel       string  `json:"channel"`
	PaymentMethod string  `json:"payment_method"`
	// Fee overrides the suggested fee when set.
	Fee *float64 `json:"fee,omitempty" validate:"omitempty,gte=0"`
}
