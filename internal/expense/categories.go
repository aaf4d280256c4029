package expense

// OtherCategory buckets expenses saved without a category.
const OtherCategory = "Other"

// DefaultCategories are the choices offered when logging an expense. Any
// other non-empty category is accepted.
var DefaultCategories = []string{
	"Fabric",
	"Screen printing / DTF",
	"Embroidery",
	"Packaging",
	"Shopee/Lazada fee",
	"GCash fee",
	"Delivery/rider",
	"Stall rent",
	"Electricity",
	"Ads",
	"Buttons/tags/labels",
}
