package dto

type AdjustInventoryInput struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Delta     int64 `json:"delta" validate:"ne=0"`
}
