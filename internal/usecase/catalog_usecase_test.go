package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"unika_storefront/internal/clients"
	"unika_storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCatalogRepository struct {
	products []domain.Product
	merged   [][]domain.Product
}

func (m *mockCatalogRepository) ListProducts() []domain.Product {
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out
}

func (m *mockCatalogRepository) GetProductByID(id string) (*domain.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product with ID %s not found", id)
}

func (m *mockCatalogRepository) Merge(fetched []domain.Product) {
	m.merged = append(m.merged, fetched)
	for _, p := range fetched {
		m.products = append(m.products, p)
	}
}

type mockInventoryClient struct {
	catalog    []domain.Product
	catalogErr error
	adminData  *clients.AdminData
	adminErr   error
	saved      []domain.Product
	saveErr    error
}

func (m *mockInventoryClient) FetchCatalog(context.Context) ([]domain.Product, error) {
	if m.catalogErr != nil {
		return nil, m.catalogErr
	}
	return m.catalog, nil
}

func (m *mockInventoryClient) FetchAdminData(context.Context) (*clients.AdminData, error) {
	if m.adminErr != nil {
		return nil, m.adminErr
	}
	return m.adminData, nil
}

func (m *mockInventoryClient) SaveProduct(_ context.Context, product domain.Product) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, product)
	return nil
}

func TestCatalogSync_MergesFetchedProducts(t *testing.T) {
	repo := &mockCatalogRepository{products: []domain.Product{{ID: "1", Name: "Default", Price: 1250}}}
	inv := &mockInventoryClient{catalog: []domain.Product{{ID: "7", Name: "Fresh Drop", Price: 1100}}}
	uc := NewCatalogUseCase(repo, inv, testLogger())

	uc.Sync(context.Background())

	require.Len(t, repo.merged, 1)
	assert.False(t, uc.Syncing())
	assert.Len(t, uc.ListProducts(), 2)
}

func TestCatalogSync_FailureRetainsCurrentList(t *testing.T) {
	repo := &mockCatalogRepository{products: []domain.Product{{ID: "1", Name: "Default", Price: 1250}}}
	inv := &mockInventoryClient{catalogErr: errors.New("connection refused")}
	uc := NewCatalogUseCase(repo, inv, testLogger())

	uc.Sync(context.Background())

	assert.Empty(t, repo.merged)
	assert.Len(t, uc.ListProducts(), 1)
	// The loading flag clears even on failure so screens never spin forever.
	assert.False(t, uc.Syncing())
}

func TestCatalogSyncing_TrueBeforeFirstSync(t *testing.T) {
	uc := NewCatalogUseCase(&mockCatalogRepository{}, &mockInventoryClient{}, testLogger())

	assert.True(t, uc.Syncing())
}

func TestGetProductByID_EmptyID(t *testing.T) {
	uc := NewCatalogUseCase(&mockCatalogRepository{}, &mockInventoryClient{}, testLogger())

	_, err := uc.GetProductByID("")
	assert.ErrorContains(t, err, "invalid")
}
