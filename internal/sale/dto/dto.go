package dto

const DefaultLimit = 100

type SaleFilters struct {
	Limit int // <= 0 means DefaultLimit
}
