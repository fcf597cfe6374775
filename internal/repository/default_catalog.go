package repository

import "unika_storefront/internal/domain"

// DefaultProducts is the built-in Genesis collection. It guarantees the shop
// is never empty: the catalog starts from this list and external sync records
// overwrite or extend it by ID.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Neon Cyberpunk Soul",
			Price:       1250,
			Description: "A futuristic aesthetic with vibrant neon highlights. Premium cotton finish.",
			Image:       "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?auto=format&fit=crop&q=80&w=600",
			Category:    domain.CategoryModern,
		},
		{
			ID:          "2",
			Name:        "Vintage Sunset Dream",
			Price:       950,
			Description: "Relive the 80s with this classic retro sunset gradient. Soft-washed fabric.",
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&q=80&w=600",
			Category:    domain.CategoryVintage,
		},
		{
			ID:          "3",
			Name:        "Minimalist Wave",
			Price:       1100,
			Description: "A single, elegant line representing the flow of the ocean. Minimalist perfection.",
			Image:       "https://images.unsplash.com/photo-1576566588028-4147f3842f27?auto=format&fit=crop&q=80&w=600",
			Category:    domain.CategoryAbstract,
		},
		{
			ID:          "4",
			Name:        "Urban Jungle",
			Price:       1050,
			Description: "Bold greenery patterns interwoven with city skylines. Dynamic and fresh.",
			Image:       "https://images.unsplash.com/photo-1562157873-818bc0726f68?auto=format&fit=crop&q=80&w=600",
			Category:    domain.CategoryModern,
		},
		{
			ID:          "5",
			Name:        "Geometric Silence",
			Price:       1300,
			Description: "Symmetry at its finest. Clean lines and bold shapes for the modern soul.",
			Image:       "https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?auto=format&fit=crop&q=80&w=600",
			Category:    domain.CategoryAbstract,
		},
		{
			ID:          "6",
			Name:        "Classic Logo Tee",
			Price:       850,
			Description: "The original UNIKA mark on high-quality premium cotton.",
			Image:       "https://images.unsplash.com/photo-1527719327859-c6ce80353573?auto=format&fit=crop&q=80&w=600",
			Category:    domain.CategoryModern,
		},
	}
}
