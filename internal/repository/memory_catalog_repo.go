package repository

import (
	"fmt"
	"sync"

	"unika_storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// memoryCatalogRepository keeps the product list in memory. Display order
// matters to the shop screens, so it stores an ordered slice plus an ID
// index for upserts.
type memoryCatalogRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
	log      *logrus.Logger
}

func NewMemoryCatalogRepository(defaults []domain.Product, logger *logrus.Logger) domain.CatalogRepository {
	repo := &memoryCatalogRepository{
		products: make([]domain.Product, 0, len(defaults)),
		index:    make(map[string]int, len(defaults)),
		log:      logger,
	}
	for _, p := range defaults {
		repo.index[p.ID] = len(repo.products)
		repo.products = append(repo.products, p)
	}
	return repo
}

func (r *memoryCatalogRepository) ListProducts() []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *memoryCatalogRepository) GetProductByID(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s not found", id)
	}
	product := r.products[pos]
	return &product, nil
}

func (r *memoryCatalogRepository) Merge(fetched []domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced, appended := 0, 0
	for _, p := range fetched {
		if pos, ok := r.index[p.ID]; ok {
			r.products[pos] = p
			replaced++
			continue
		}
		r.index[p.ID] = len(r.products)
		r.products = append(r.products, p)
		appended++
	}
	r.log.Debugf("Repository: Catalog merge applied (%d replaced, %d appended, %d total)", replaced, appended, len(r.products))
}
