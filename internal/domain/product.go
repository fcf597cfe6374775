package domain

type Category string

const (
	CategoryModern   Category = "Modern"
	CategoryVintage  Category = "Vintage"
	CategoryAbstract Category = "Abstract"
	CategoryCustom   Category = "Custom"
)

func IsValidCategory(c Category) bool {
	switch c {
	case CategoryModern, CategoryVintage, CategoryAbstract, CategoryCustom:
		return true
	default:
		return false
	}
}

// Product prices are whole taka amounts, so integer arithmetic is exact.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
}

type CatalogRepository interface {
	ListProducts() []Product
	GetProductByID(id string) (*Product, error)
	// Merge upserts fetched records keyed by product ID: a matching ID
	// replaces the entry in place, a new ID is appended. Defaults that the
	// fetched list does not mention are left untouched.
	Merge(fetched []Product)
}
