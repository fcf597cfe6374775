package usecase

import (
	"context"
	"errors"
	"sync"

	"unika_storefront/internal/clients"
	"unika_storefront/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

type CatalogUseCase interface {
	ListProducts() []domain.Product
	GetProductByID(id string) (*domain.Product, error)
	// Sync refreshes the catalog from the external inventory service.
	// Failures are swallowed: the current list (defaults included) is
	// retained and the loading flag is cleared regardless of outcome.
	Sync(ctx context.Context)
	Syncing() bool
}

type catalogUseCase struct {
	catalogRepo     domain.CatalogRepository
	inventoryClient clients.InventoryClient
	log             *logrus.Logger

	sfg     singleflight.Group
	mu      sync.RWMutex
	syncing bool
}

func NewCatalogUseCase(repo domain.CatalogRepository, invClient clients.InventoryClient, logger *logrus.Logger) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo:     repo,
		inventoryClient: invClient,
		log:             logger,
		syncing:         true,
	}
}

func (uc *catalogUseCase) ListProducts() []domain.Product {
	return uc.catalogRepo.ListProducts()
}

func (uc *catalogUseCase) GetProductByID(id string) (*domain.Product, error) {
	if id == "" {
		return nil, errors.New("invalid product ID")
	}
	return uc.catalogRepo.GetProductByID(id)
}

func (uc *catalogUseCase) Sync(ctx context.Context) {
	// Overlapping syncs collapse into one fetch; last write wins either way.
	uc.sfg.Do("catalog-sync", func() (interface{}, error) {
		uc.setSyncing(true)
		defer uc.setSyncing(false)

		uc.log.Info("Use Case: Starting catalog sync")
		fetched, err := uc.inventoryClient.FetchCatalog(ctx)
		if err != nil {
			uc.log.Warnf("Use Case: Catalog sync failed, retaining current list: %v", err)
			return nil, nil
		}

		uc.catalogRepo.Merge(fetched)
		uc.log.Infof("Use Case: Catalog sync merged %d records", len(fetched))
		return nil, nil
	})
}

func (uc *catalogUseCase) Syncing() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.syncing
}

func (uc *catalogUseCase) setSyncing(v bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.syncing = v
}
