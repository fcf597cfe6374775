package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"unika_storefront/internal/clients"
	"unika_storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AdminUseCase interface {
	// SeedAdmin creates the initial back-office account with a bcrypt hash.
	// A duplicate login ID is not an error; the existing account wins.
	SeedAdmin(loginID, password string) error
	Authenticate(loginID, password string) (*domain.AdminAuthResponse, error)
	ValidateToken(token string) bool
	Logout(token string)
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateOrderStatus(ctx context.Context, orderID, status, courier string) error
	Dashboard(ctx context.Context) (*clients.AdminData, error)
}

type adminUseCase struct {
	adminRepo domain.AdminRepository
	inventory clients.InventoryClient
	intake    clients.OrderIntakeClient
	catalog   CatalogUseCase
	tokenTTL  time.Duration
	log       *logrus.Logger

	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewAdminUseCase(
	repo domain.AdminRepository,
	inventory clients.InventoryClient,
	intake clients.OrderIntakeClient,
	catalog CatalogUseCase,
	tokenTTL time.Duration,
	logger *logrus.Logger,
) AdminUseCase {
	return &adminUseCase{
		adminRepo: repo,
		inventory: inventory,
		intake:    intake,
		catalog:   catalog,
		tokenTTL:  tokenTTL,
		log:       logger,
		tokens:    make(map[string]time.Time),
		now:       time.Now,
	}
}

func (uc *adminUseCase) SeedAdmin(loginID, password string) error {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" || password == "" {
		return errors.New("admin login ID and password cannot be empty")
	}

	if _, err := uc.adminRepo.GetAdminByLoginID(loginID); err == nil {
		uc.log.Infof("Use Case: Admin %s already exists, skipping seed", loginID)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash seed password for %s: %v", loginID, err)
		return fmt.Errorf("internal error processing password: %w", err)
	}

	_, err = uc.adminRepo.CreateAdmin(&domain.AdminUser{
		LoginID:      loginID,
		PasswordHash: string(hash),
	})
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return nil
		}
		uc.log.Errorf("Use Case: Repository failed to seed admin %s: %v", loginID, err)
		return err
	}

	uc.log.Infof("Use Case: Seeded admin account %s", loginID)
	return nil
}

func (uc *adminUseCase) Authenticate(loginID, password string) (*domain.AdminAuthResponse, error) {
	loginID = strings.TrimSpace(loginID)
	uc.log.Infof("Use Case: Attempting admin authentication for %s", loginID)

	if loginID == "" || password == "" {
		return &domain.AdminAuthResponse{Authenticated: false, ErrorMessage: "Invalid ID or password"}, nil
	}

	admin, err := uc.adminRepo.GetAdminByLoginID(loginID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			uc.log.Warnf("Use Case: Admin auth failed - unknown login ID %s", loginID)
			return &domain.AdminAuthResponse{Authenticated: false, ErrorMessage: "Invalid ID or password"}, nil
		}
		uc.log.Errorf("Use Case: Error retrieving admin %s during auth: %v", loginID, err)
		return nil, fmt.Errorf("failed to retrieve admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Admin auth failed - incorrect password for %s", loginID)
			return &domain.AdminAuthResponse{Authenticated: false, ErrorMessage: "Invalid ID or password"}, nil
		}
		uc.log.Errorf("Use Case: Error comparing password hash for %s: %v", loginID, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	token := uuid.NewString()
	uc.mu.Lock()
	uc.tokens[token] = uc.now().Add(uc.tokenTTL)
	uc.mu.Unlock()

	uc.log.Infof("Use Case: Admin %s authenticated, token issued", loginID)
	return &domain.AdminAuthResponse{
		Authenticated: true,
		Token:         token,
	}, nil
}

func (uc *adminUseCase) ValidateToken(token string) bool {
	if token == "" {
		return false
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	expiry, ok := uc.tokens[token]
	if !ok {
		return false
	}
	if uc.now().After(expiry) {
		delete(uc.tokens, token)
		return false
	}
	return true
}

func (uc *adminUseCase) Logout(token string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.tokens, token)
}

func (uc *adminUseCase) SaveProduct(ctx context.Context, product domain.Product) error {
	if product.ID == "" {
		return errors.New("product ID cannot be empty")
	}
	if product.Name == "" {
		return errors.New("product name cannot be empty")
	}
	if product.Price <= 0 {
		return errors.New("product price must be positive")
	}
	if !domain.IsValidCategory(product.Category) {
		return fmt.Errorf("invalid product category %q", product.Category)
	}

	uc.log.Infof("Use Case: Saving product %s to inventory", product.ID)
	if err := uc.inventory.SaveProduct(ctx, product); err != nil {
		uc.log.Errorf("Use Case: Failed to save product %s: %v", product.ID, err)
		return err
	}

	// The external sheet is the source of truth; resync so the storefront
	// reflects the change without waiting for the next visitor.
	uc.catalog.Sync(ctx)
	return nil
}

func (uc *adminUseCase) UpdateOrderStatus(ctx context.Context, orderID, status, courier string) error {
	if orderID == "" {
		return errors.New("order ID cannot be empty")
	}

	uc.log.Infof("Use Case: Updating order %s status to %q", orderID, status)
	if err := uc.intake.UpdateOrderStatus(ctx, orderID, status, courier); err != nil {
		uc.log.Errorf("Use Case: Failed to update order %s: %v", orderID, err)
		return err
	}
	return nil
}

func (uc *adminUseCase) Dashboard(ctx context.Context) (*clients.AdminData, error) {
	data, err := uc.inventory.FetchAdminData(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to fetch admin dashboard data: %v", err)
		return nil, err
	}
	return data, nil
}
