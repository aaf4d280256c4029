package dto

type ProductFilters struct {
	// IncludeInactive lists archived products too. The catalogue view
	// only shows active ones.
	IncludeInactive bool
}
