package model

type ProductType string

const (
	ProductTypeClothing ProductType = "clothing"
	ProductTypeCap      ProductType = "cap"
)

type Product struct {
	ID             int64       `db:"id" json:"id"`
	Name           string      `db:"name" json:"name"`
	Type           ProductType `db:"type" json:"type"`
	Color          *string     `db:"color" json:"color"` // Nullable
	Size           *string     `db:"size" json:"size"`   // Nullable
	UnitCost       float64     `db:"unit_cost" json:"unit_cost"`
	PriceSuggested float64     `db:"price_suggested" json:"price_suggested"`
	Active         bool        `db:"active" json:"active"`
}

// ProductWithInventory is a product row joined with its stock level.
type ProductWithInventory struct {
	Product
	QtyOnHand int64 `db:"qty_on_hand" json:"qty_on_hand"`
}

// MarginWarning flags a product whose suggested price does not cover cost.
type MarginWarning struct {
	ProductID      int64   `db:"id" json:"product_id"`
	Name           string  `db:"name" json:"name"`
	UnitCost       float64 `db:"unit_cost" json:"unit_cost"`
	PriceSuggested float64 `db:"price_suggested" json:"price_suggested"`
}
