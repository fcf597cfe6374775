package usecase

import "unika_storefront/internal/domain"

// PricingPolicy computes the shipping tiers and order totals. It is pure:
// every quote is derived from the cart and zone passed in, so totals can
// never go stale after a cart or zone mutation.
type PricingPolicy struct {
	localFee  int
	remoteFee int
}

func NewPricingPolicy(localFee, remoteFee int) *PricingPolicy {
	return &PricingPolicy{
		localFee:  localFee,
		remoteFee: remoteFee,
	}
}

// ShippingFee is zero exactly when the cart is empty; otherwise it is the
// zone's flat tier.
func (p *PricingPolicy) ShippingFee(cartEmpty bool, zone domain.Zone) int {
	if cartEmpty {
		return 0
	}
	if zone == domain.ZoneRemote {
		return p.remoteFee
	}
	return p.localFee
}

type Quote struct {
	Subtotal    int `json:"subtotal"`
	ShippingFee int `json:"shippingFee"`
	GrandTotal  int `json:"grandTotal"`
}

func (p *PricingPolicy) Quote(cart *domain.Cart, zone domain.Zone) Quote {
	subtotal := cart.Subtotal()
	fee := p.ShippingFee(cart.IsEmpty(), zone)
	return Quote{
		Subtotal:    subtotal,
		ShippingFee: fee,
		GrandTotal:  subtotal + fee,
	}
}
