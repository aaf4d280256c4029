package dto

const DefaultLimit = 100

type ExpenseFilters struct {
	Limit int // <= 0 means DefaultLimit
}
