package model

type Inventory struct {
	ID        int64 `db:"id" json:"id"`
	ProductID int64 `db:"product_id" json:"product_id"`
	QtyOnHand int64 `db:"qty_on_hand" json:"qty_on_hand"`
}

// StockLevel is an inventory row with the product fields the restock views need.
type StockLevel struct {
	ProductID      int64   `db:"product_id" json:"product_id"`
	Name           string  `db:"name" json:"name"`
	UnitCost       float64 `db:"unit_cost" json:"unit_cost"`
	PriceSuggested float64 `db:"price_suggested" json:"price_suggested"`
	QtyOnHand      int64   `db:"qty_on_hand" json:"qty_on_hand"`
}
