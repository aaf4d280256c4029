package dto

// UpsertProductInput creates a product when ID is zero and rewrites it
// otherwise. A nil QtyOnHand leaves existing stock untouched; a nil Active
// means active.
type UpsertProductInput struct {
	ID             int64   `json:"id" validate:"gte=0"`
	Name           string  `json:"name" validate:"required,max=120"`
	Type           string  `json:"type" validate:"oneof=clothing cap"`
	Color          *string `json:"color,omitempty" validate:"omitempty,max=40"`
	Size           *string `json:"size,omitempty" validate:"omitempty,max=20"`
	UnitCost       float64 `json:"unit_cost" validate:"gte=0"`
	PriceSuggested float64 `json:"price_suggested" validate:"gte=0"`
	Active         *bool   `json:"active,omitempty"`
	QtyOnHand      *int64  `json:"qty_on_hand,omitempty"`
}
