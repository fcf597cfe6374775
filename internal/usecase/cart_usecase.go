package usecase

import (
	"errors"

	"unika_storefront/internal/domain"

	"github.com/sirupsen/logrus"
)

type CartUseCase interface {
	GetCart(sessionID string) (*domain.Cart, error)
	// AddItem merges into an existing (product ID, size) line by
	// incrementing its quantity, or appends a new line with quantity 1.
	AddItem(sessionID string, product domain.Product, size string) (*domain.Cart, error)
	// UpdateQuantity adjusts the matching line by delta, clamped at zero;
	// a line that reaches zero is removed. Missing lines are a no-op.
	UpdateQuantity(sessionID, productID, size string, delta int) (*domain.Cart, error)
	RemoveItem(sessionID, productID, size string) (*domain.Cart, error)
	Clear(sessionID string) error
}

type cartUseCase struct {
	cartRepo domain.CartRepository
	log      *logrus.Logger
}

func NewCartUseCase(repo domain.CartRepository, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		cartRepo: repo,
		log:      logger,
	}
}

func (uc *cartUseCase) GetCart(sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}
	return uc.cartRepo.GetCart(sessionID)
}

func (uc *cartUseCase) AddItem(sessionID string, product domain.Product, size string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	cart, err := uc.cartRepo.GetCart(sessionID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to get cart for session %s: %v", sessionID, err)
		return nil, err
	}

	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].Matches(product.ID, size) {
			cart.Lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, domain.CartLine{
			Product:      product,
			Quantity:     1,
			SelectedSize: size,
		})
	}

	if err := uc.cartRepo.SaveCart(cart); err != nil {
		uc.log.Errorf("Use Case: Repository failed to save cart for session %s: %v", sessionID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Added product %s (size %q) to cart for session %s (count now %d)", product.ID, size, sessionID, cart.Count())
	return cart, nil
}

func (uc *cartUseCase) UpdateQuantity(sessionID, productID, size string, delta int) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	cart, err := uc.cartRepo.GetCart(sessionID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to get cart for session %s: %v", sessionID, err)
		return nil, err
	}

	for i := range cart.Lines {
		if !cart.Lines[i].Matches(productID, size) {
			continue
		}

		quantity := cart.Lines[i].Quantity + delta
		if quantity <= 0 {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			uc.log.Infof("Use Case: Quantity reached zero, removed line %s (size %q) for session %s", productID, size, sessionID)
		} else {
			cart.Lines[i].Quantity = quantity
		}

		if err := uc.cartRepo.SaveCart(cart); err != nil {
			uc.log.Errorf("Use Case: Repository failed to save cart for session %s: %v", sessionID, err)
			return nil, err
		}
		return cart, nil
	}

	// No matching line: nothing to do.
	uc.log.Debugf("Use Case: UpdateQuantity no-op, no line %s (size %q) in session %s", productID, size, sessionID)
	return cart, nil
}

func (uc *cartUseCase) RemoveItem(sessionID, productID, size string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	cart, err := uc.cartRepo.GetCart(sessionID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to get cart for session %s: %v", sessionID, err)
		return nil, err
	}

	for i := range cart.Lines {
		if cart.Lines[i].Matches(productID, size) {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			if err := uc.cartRepo.SaveCart(cart); err != nil {
				uc.log.Errorf("Use Case: Repository failed to save cart for session %s: %v", sessionID, err)
				return nil, err
			}
			uc.log.Infof("Use Case: Removed line %s (size %q) from cart for session %s", productID, size, sessionID)
			return cart, nil
		}
	}

	return cart, nil
}

func (uc *cartUseCase) Clear(sessionID string) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	if err := uc.cartRepo.DeleteCart(sessionID); err != nil {
		uc.log.Errorf("Use Case: Repository failed to clear cart for session %s: %v", sessionID, err)
		return err
	}
	uc.log.Infof("Use Case: Cart cleared for session %s", sessionID)
	return nil
}
