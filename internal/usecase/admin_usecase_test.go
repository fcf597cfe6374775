package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"unika_storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockAdminRepository struct {
	admins map[string]*domain.AdminUser
	err    error
}

func newMockAdminRepository() *mockAdminRepository {
	return &mockAdminRepository{admins: make(map[string]*domain.AdminUser)}
}

func (m *mockAdminRepository) CreateAdmin(admin *domain.AdminUser) (*domain.AdminUser, error) {
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.admins[admin.LoginID]; ok {
		return nil, errors.New("admin with this login ID already exists")
	}
	m.admins[admin.LoginID] = admin
	return admin, nil
}

func (m *mockAdminRepository) GetAdminByLoginID(loginID string) (*domain.AdminUser, error) {
	if m.err != nil {
		return nil, m.err
	}
	admin, ok := m.admins[loginID]
	if !ok {
		return nil, errors.New("admin not found")
	}
	return admin, nil
}

func adminFixture(t *testing.T) (AdminUseCase, *mockAdminRepository, *mockInventoryClient, *mockIntakeClient) {
	t.Helper()
	repo := newMockAdminRepository()
	inv := &mockInventoryClient{}
	intake := &mockIntakeClient{}
	catalog := NewCatalogUseCase(&mockCatalogRepository{}, inv, testLogger())
	uc := NewAdminUseCase(repo, inv, intake, catalog, time.Hour, testLogger())
	return uc, repo, inv, intake
}

func TestAdminAuthenticate_Success(t *testing.T) {
	uc, _, _, _ := adminFixture(t)
	require.NoError(t, uc.SeedAdmin("unika-admin", "s3cret"))

	auth, err := uc.Authenticate("unika-admin", "s3cret")
	require.NoError(t, err)
	assert.True(t, auth.Authenticated)
	assert.NotEmpty(t, auth.Token)
	assert.True(t, uc.ValidateToken(auth.Token))
}

func TestAdminAuthenticate_WrongPassword(t *testing.T) {
	uc, _, _, _ := adminFixture(t)
	require.NoError(t, uc.SeedAdmin("unika-admin", "s3cret"))

	auth, err := uc.Authenticate("unika-admin", "wrong")
	require.NoError(t, err)
	assert.False(t, auth.Authenticated)
	assert.Equal(t, "Invalid ID or password", auth.ErrorMessage)
	assert.Empty(t, auth.Token)
}

func TestAdminAuthenticate_UnknownLoginID(t *testing.T) {
	uc, _, _, _ := adminFixture(t)

	auth, err := uc.Authenticate("nobody", "s3cret")
	require.NoError(t, err)
	assert.False(t, auth.Authenticated)
	// Unknown ID and wrong password are indistinguishable to the caller.
	assert.Equal(t, "Invalid ID or password", auth.ErrorMessage)
}

func TestAdminSeed_ExistingAccountIsKept(t *testing.T) {
	uc, repo, _, _ := adminFixture(t)
	require.NoError(t, uc.SeedAdmin("unika-admin", "first"))
	require.NoError(t, uc.SeedAdmin("unika-admin", "second"))

	// The original hash survives a repeated seed.
	admin := repo.admins["unika-admin"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("first")))
}

func TestAdminValidateToken_Expiry(t *testing.T) {
	repo := newMockAdminRepository()
	inv := &mockInventoryClient{}
	catalog := NewCatalogUseCase(&mockCatalogRepository{}, inv, testLogger())
	uc := NewAdminUseCase(repo, inv, &mockIntakeClient{}, catalog, time.Minute, testLogger())
	require.NoError(t, uc.SeedAdmin("unika-admin", "s3cret"))

	auth, err := uc.Authenticate("unika-admin", "s3cret")
	require.NoError(t, err)
	require.True(t, auth.Authenticated)

	impl := uc.(*adminUseCase)
	impl.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	assert.False(t, uc.ValidateToken(auth.Token))
	// Expired tokens are purged, not just rejected.
	assert.False(t, uc.ValidateToken(auth.Token))
}

func TestAdminLogout_InvalidatesToken(t *testing.T) {
	uc, _, _, _ := adminFixture(t)
	require.NoError(t, uc.SeedAdmin("unika-admin", "s3cret"))

	auth, err := uc.Authenticate("unika-admin", "s3cret")
	require.NoError(t, err)

	uc.Logout(auth.Token)
	assert.False(t, uc.ValidateToken(auth.Token))
}

func TestAdminSaveProduct_ValidationAndResync(t *testing.T) {
	uc, _, inv, _ := adminFixture(t)

	err := uc.SaveProduct(context.Background(), domain.Product{ID: "9", Name: "New Tee", Price: 1200, Category: domain.CategoryModern})
	require.NoError(t, err)
	require.Len(t, inv.saved, 1)

	err = uc.SaveProduct(context.Background(), domain.Product{Name: "No ID", Price: 100, Category: domain.CategoryModern})
	assert.ErrorContains(t, err, "ID cannot be empty")

	err = uc.SaveProduct(context.Background(), domain.Product{ID: "9", Name: "Free Tee", Price: 0, Category: domain.CategoryModern})
	assert.ErrorContains(t, err, "must be positive")

	err = uc.SaveProduct(context.Background(), domain.Product{ID: "9", Name: "Odd Tee", Price: 100, Category: "Streetwear"})
	assert.ErrorContains(t, err, "invalid product category")
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	uc, _, _, intake := adminFixture(t)

	require.NoError(t, uc.UpdateOrderStatus(context.Background(), "UNIKA-1042", "In Transit", "Pathao"))
	require.Len(t, intake.updates, 1)
	assert.Equal(t, "UNIKA-1042/In Transit/Pathao", intake.updates[0])

	err := uc.UpdateOrderStatus(context.Background(), "", "Delivered", "")
	assert.ErrorContains(t, err, "cannot be empty")
}
