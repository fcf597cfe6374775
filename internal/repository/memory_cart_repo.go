package repository

import (
	"sync"

	"unika_storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

// memoryCartRepository holds one cart per session. Carts are volatile:
// durability of a finished order belongs to the external intake store, not
// to this process.
type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
	log   *logrus.Logger
}

func NewMemoryCartRepository(logger *logrus.Logger) domain.CartRepository {
	return &memoryCartRepository{
		carts: make(map[string]*domain.Cart),
		log:   logger,
	}
}

func (r *memoryCartRepository) GetCart(sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return &domain.Cart{SessionID: sessionID}, nil
	}

	out := &domain.Cart{
		SessionID: cart.SessionID,
		Lines:     make([]domain.CartLine, len(cart.Lines)),
	}
	copy(out.Lines, cart.Lines)
	return out, nil
}

func (r *memoryCartRepository) SaveCart(cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &domain.Cart{
		SessionID: cart.SessionID,
		Lines:     make([]domain.CartLine, len(cart.Lines)),
	}
	copy(stored.Lines, cart.Lines)
	r.carts[cart.SessionID] = stored
	r.log.Debugf("Repository: Cart saved for session %s (%d lines)", cart.SessionID, len(cart.Lines))
	return nil
}

func (r *memoryCartRepository) DeleteCart(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	r.log.Debugf("Repository: Cart deleted for session %s", sessionID)
	return nil
}
