package domain

import "time"

// View is one of the storefront's named screens. The router is pure
// navigational state; nothing is persisted per view.
type View string

const (
	ViewHome          View = "home"
	ViewShop          View = "shop"
	ViewDesigner      View = "designer"
	ViewCart          View = "cart"
	ViewProductDetail View = "product-detail"
	ViewCheckout      View = "checkout"
	ViewSuccess       View = "success"
	ViewTracking      View = "tracking"
	ViewAdmin         View = "admin"
)

func IsValidView(v View) bool {
	switch v {
	case ViewHome, ViewShop, ViewDesigner, ViewCart, ViewProductDetail,
		ViewCheckout, ViewSuccess, ViewTracking, ViewAdmin:
		return true
	default:
		return false
	}
}

// Zone is the shipping destination category that selects the fee tier.
type Zone string

const (
	ZoneLocal  Zone = "local"
	ZoneRemote Zone = "remote"
)

func IsValidZone(z Zone) bool {
	return z == ZoneLocal || z == ZoneRemote
}

// Session is the volatile per-visitor state: current view, shipping zone and
// the last checkout submission state. It lives only as long as the process.
type Session struct {
	ID         string          `json:"id"`
	View       View            `json:"view"`
	Zone       Zone            `json:"zone"`
	Submission SubmissionState `json:"submission"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type SessionRepository interface {
	CreateSession() (*Session, error)
	GetSession(id string) (*Session, error)
	SaveSession(session *Session) error
}
