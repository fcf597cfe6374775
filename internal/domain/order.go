package domain

import "fmt"

// CustomerDetails are the delivery fields collected at checkout. All of them
// are required.
type CustomerDetails struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	District    string `json:"district"`
	SubDistrict string `json:"subDistrict"`
	Street      string `json:"street"`
	Address     string `json:"address"`
}

// OrderPayload is the wire format accepted by the external order-intake
// endpoint. Items is the flattened "Name (Size) xQty, ..." summary the
// intake sheet expects; amounts are whole taka.
type OrderPayload struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	District       string `json:"district"`
	SubDistrict    string `json:"subDistrict"`
	Street         string `json:"street"`
	Address        string `json:"address"`
	Items          string `json:"items"`
	Subtotal       int    `json:"subtotal"`
	Shipping       int    `json:"shipping"`
	Total          int    `json:"total"`
	Date           string `json:"date"`
	IdempotencyKey string `json:"idempotencyKey"`
}

// SubmissionResult describes what is actually known after an order POST.
// Sent means the request left this process without a transport error; it is
// NOT proof the backend persisted the order. The idempotency key on the
// payload exists so a retry after an ambiguous outcome is safe.
type SubmissionResult string

const (
	SubmissionSent            SubmissionResult = "sent"
	SubmissionTransportFailed SubmissionResult = "transport_failed"
)

// SubmissionState is the per-checkout state machine.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSucceeded  SubmissionState = "succeeded"
	SubmissionFailed     SubmissionState = "failed"
)

// ValidationError identifies the specific checkout field that failed, so the
// caller can surface a field-level message without a network round trip.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// TrackingStatus is the normalized order progress used by the tracking
// screen.
type TrackingStatus string

const (
	TrackingPlaced     TrackingStatus = "placed"
	TrackingProcessing TrackingStatus = "processing"
	TrackingShipped    TrackingStatus = "shipped"
	TrackingDelivered  TrackingStatus = "delivered"
)

// NormalizeTrackingStatus maps the intake sheet's status labels onto the
// tracking steps. Unknown labels fall back to "placed".
func NormalizeTrackingStatus(raw string) TrackingStatus {
	switch raw {
	case "Order Placed":
		return TrackingPlaced
	case "Processing":
		return TrackingProcessing
	case "In Transit":
		return TrackingShipped
	case "Delivered":
		return TrackingDelivered
	default:
		return TrackingPlaced
	}
}

type TrackingInfo struct {
	OrderID string         `json:"orderId"`
	Status  TrackingStatus `json:"status"`
	Date    string         `json:"date"`
	Items   string         `json:"items"`
	Total   string         `json:"total"`
	Courier string         `json:"courier"`
}
