package usecase

import (
	"testing"

	"unika_storefront/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestShippingFee_ZeroForEmptyCart(t *testing.T) {
	pricing := NewPricingPolicy(60, 120)

	assert.Equal(t, 0, pricing.ShippingFee(true, domain.ZoneLocal))
	assert.Equal(t, 0, pricing.ShippingFee(true, domain.ZoneRemote))
}

func TestShippingFee_ZoneTiers(t *testing.T) {
	pricing := NewPricingPolicy(60, 120)

	assert.Equal(t, 60, pricing.ShippingFee(false, domain.ZoneLocal))
	assert.Equal(t, 120, pricing.ShippingFee(false, domain.ZoneRemote))
}

func TestQuote_SingleItemLocal(t *testing.T) {
	pricing := NewPricingPolicy(60, 120)
	cart := &domain.Cart{
		SessionID: "s1",
		Lines: []domain.CartLine{
			{Product: domain.Product{ID: "1", Price: 1250}, Quantity: 1, SelectedSize: "M"},
		},
	}

	quote := pricing.Quote(cart, domain.ZoneLocal)
	assert.Equal(t, 1250, quote.Subtotal)
	assert.Equal(t, 60, quote.ShippingFee)
	assert.Equal(t, 1310, quote.GrandTotal)
}

func TestQuote_EmptiedCartDropsShipping(t *testing.T) {
	pricing := NewPricingPolicy(60, 120)
	cart := &domain.Cart{SessionID: "s1"}

	quote := pricing.Quote(cart, domain.ZoneRemote)
	assert.Equal(t, 0, quote.Subtotal)
	assert.Equal(t, 0, quote.ShippingFee)
	assert.Equal(t, 0, quote.GrandTotal)
}

func TestQuote_MultiLineRemote(t *testing.T) {
	pricing := NewPricingPolicy(60, 120)
	cart := &domain.Cart{
		SessionID: "s1",
		Lines: []domain.CartLine{
			{Product: domain.Product{ID: "1", Price: 1250}, Quantity: 2, SelectedSize: "M"},
			{Product: domain.Product{ID: "2", Price: 950}, Quantity: 1, SelectedSize: "L"},
		},
	}

	quote := pricing.Quote(cart, domain.ZoneRemote)
	assert.Equal(t, 3450, quote.Subtotal)
	assert.Equal(t, 120, quote.ShippingFee)
	assert.Equal(t, 3570, quote.GrandTotal)
}
