package domain

// CartLine is a cart entry identified by the (product ID, selected size)
// pair. An empty SelectedSize means "no size chosen" and is a distinct
// identity value, never equal to any named size.
type CartLine struct {
	Product
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize,omitempty"`
}

func (l CartLine) Matches(productID, size string) bool {
	return l.ID == productID && l.SelectedSize == size
}

// LineTotal returns price x quantity for this line.
func (l CartLine) LineTotal() int {
	return l.Price * l.Quantity
}

// Cart holds the session's lines. Count and Subtotal are always derived from
// the lines; nothing is cached, so totals can never go stale.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
}

func (c *Cart) Count() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

func (c *Cart) Subtotal() int {
	total := 0
	for _, line := range c.Lines {
		total += line.LineTotal()
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

type CartRepository interface {
	// GetCart returns the session's cart, or a fresh empty cart if the
	// session has none yet.
	GetCart(sessionID string) (*Cart, error)
	SaveCart(cart *Cart) error
	DeleteCart(sessionID string) error
}
