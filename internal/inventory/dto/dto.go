package dto

type InventoryFilters struct {
	// Threshold lists products with qty_on_hand <= Threshold. Zero or
	// negative falls back to the configured low-stock threshold.
	Threshold int64
}
