package usecase

import (
	"errors"
	"testing"

	"unika_storefront/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCartRepository struct {
	carts map[string]*domain.Cart
	err   error
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{carts: make(map[string]*domain.Cart)}
}

func (m *mockCartRepository) GetCart(sessionID string) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	if cart, ok := m.carts[sessionID]; ok {
		return cart, nil
	}
	return &domain.Cart{SessionID: sessionID}, nil
}

func (m *mockCartRepository) SaveCart(cart *domain.Cart) error {
	if m.err != nil {
		return m.err
	}
	m.carts[cart.SessionID] = cart
	return nil
}

func (m *mockCartRepository) DeleteCart(sessionID string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.carts, sessionID)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func classicTee() domain.Product {
	return domain.Product{
		ID:       "1",
		Name:     "Classic Urban Tee",
		Price:    1250,
		Category: domain.CategoryModern,
	}
}

func TestAddItem_RepeatedAddMergesLine(t *testing.T) {
	repo := newMockCartRepository()
	uc := NewCartUseCase(repo, testLogger())

	product := classicTee()
	_, err := uc.AddItem("s1", product, "M")
	require.NoError(t, err)
	_, err = uc.AddItem("s1", product, "M")
	require.NoError(t, err)
	cart, err := uc.AddItem("s1", product, "M")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 3, cart.Count())
	assert.Equal(t, 3750, cart.Subtotal())
}

func TestAddItem_DifferentSizesAreDistinctLines(t *testing.T) {
	repo := newMockCartRepository()
	uc := NewCartUseCase(repo, testLogger())

	product := classicTee()
	_, err := uc.AddItem("s1", product, "M")
	require.NoError(t, err)
	cart, err := uc.AddItem("s1", product, "L")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestAddItem_UnsetSizeIsDistinctFromNamedSize(t *testing.T) {
	repo := newMockCartRepository()
	uc := NewCartUseCase(repo, testLogger())

	product := classicTee()
	_, err := uc.AddItem("s1", product, "")
	require.NoError(t, err)
	cart, err := uc.AddItem("s1", product, "M")
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
}

func TestAddItem_EmptySessionID(t *testing.T) {
	uc := NewCartUseCase(newMockCartRepository(), testLogger())

	_, err := uc.AddItem("", classicTee(), "M")
	assert.Error(t, err)
}

func TestUpdateQuantity_IncrementAndDecrement(t *testing.T) {
	repo := newMockCartRepository()
	uc := NewCartUseCase(repo, testLogger())

	product := classicTee()
	_, err := uc.AddItem("s1", product, "M")
	require.NoError(t, err)

	cart, err := uc.UpdateQuantity("s1", product.ID, "M", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Lines[0].Quantity)

	cart, err = uc.UpdateQuantity("s1", product.ID, "M", -1)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	repo := newMockCartRepository()
	uc := NewCartUseCase(repo, testLogger())

	product := classicTee()
	_, err := uc.AddItem("s1", product, "M")
	require.NoError(t, err)

	cart, err := uc.UpdateQuantity("s1", product.ID, "M", -1)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.True(t, cart.IsEmpty())
}

func TestUpdateQuantity_LargeNegativeDeltaRemovesLine(t *testing.T) {
	repo := newMockCartRepository()
	uc := NewCartUseCase(repo, testLogger())

	product := classicTee()
	_, err := uc.AddItem("s1", product, "M")
	require.NoError(t, err)
	_, err = uc.AddItem("s1", product, "M")
	require.NoError(t, err)

	cart, err := uc.UpdateQuantity("s1", product.ID, "M", -10)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestUpdateQuantity_MissingLineIsNoOp(t *testing.T) {
	repo := newMockCartRepository()
	uc := NewCartUseCase(repo, testLogger())

	product := classicTee()
	_, err := uc.AddItem("s1", product, "M")
	require.NoError(t, err)

	cart, err := uc.UpdateQuantity("s1", "no-such-product", "M", 5)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestRemoveItem_OnlyMatchingLineGoes(t *testing.T) {
	repo := newMockCartRepository()
	uc := NewCartUseCase(repo, testLogger())

	product := classicTee()
	_, err := uc.AddItem("s1", product, "M")
	require.NoError(t, err)
	_, err = uc.AddItem("s1", product, "L")
	require.NoError(t, err)

	cart, err := uc.RemoveItem("s1", product.ID, "M")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "L", cart.Lines[0].SelectedSize)
}

func TestClear_EmptiesCart(t *testing.T) {
	repo := newMockCartRepository()
	uc := NewCartUseCase(repo, testLogger())

	_, err := uc.AddItem("s1", classicTee(), "M")
	require.NoError(t, err)

	require.NoError(t, uc.Clear("s1"))

	cart, err := uc.GetCart("s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestGetCart_RepositoryError(t *testing.T) {
	repo := newMockCartRepository()
	repo.err = errors.New("boom")
	uc := NewCartUseCase(repo, testLogger())

	_, err := uc.GetCart("s1")
	assert.Error(t, err)
}
