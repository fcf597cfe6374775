package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"unika_storefront/internal/clients"
	"unika_storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrSubmissionFailed marks a transport-level checkout failure. The cart is
// left intact and the user may retry; the idempotency key on the payload
// keeps a retry safe even if the first request actually landed.
var ErrSubmissionFailed = errors.New("order submission failed, please try again")

type CheckoutResult struct {
	OrderKey string `json:"orderKey"`
	Items    string `json:"items"`
	Quote    Quote  `json:"quote"`
}

type CheckoutUseCase interface {
	Submit(ctx context.Context, sessionID string, details domain.CustomerDetails) (*CheckoutResult, error)
	State(sessionID string) domain.SubmissionState
}

type checkoutUseCase struct {
	cartRepo    domain.CartRepository
	sessionRepo domain.SessionRepository
	pricing     *PricingPolicy
	intake      clients.OrderIntakeClient
	log         *logrus.Logger
	now         func() time.Time
}

func NewCheckoutUseCase(
	cartRepo domain.CartRepository,
	sessionRepo domain.SessionRepository,
	pricing *PricingPolicy,
	intake clients.OrderIntakeClient,
	logger *logrus.Logger,
) CheckoutUseCase {
	return &checkoutUseCase{
		cartRepo:    cartRepo,
		sessionRepo: sessionRepo,
		pricing:     pricing,
		intake:      intake,
		log:         logger,
		now:         time.Now,
	}
}

func (uc *checkoutUseCase) Submit(ctx context.Context, sessionID string, details domain.CustomerDetails) (*CheckoutResult, error) {
	session, err := uc.sessionRepo.GetSession(sessionID)
	if err != nil {
		uc.log.Warnf("Use Case: Checkout for unknown session %s: %v", sessionID, err)
		return nil, err
	}

	cart, err := uc.cartRepo.GetCart(sessionID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to get cart for session %s: %v", sessionID, err)
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, errors.New("cart cannot be empty at checkout")
	}

	// Validation happens before any network traffic; a bad field never
	// leaves the process and never touches the cart.
	if vErr := validateCustomerDetails(details); vErr != nil {
		uc.log.Warnf("Use Case: Checkout validation failed for session %s: %v", sessionID, vErr)
		uc.setSubmission(session, domain.SubmissionFailed)
		return nil, vErr
	}

	uc.setSubmission(session, domain.SubmissionSubmitting)
	uc.log.Infof("Use Case: Submitting order for session %s (%d lines)", sessionID, len(cart.Lines))

	quote := uc.pricing.Quote(cart, session.Zone)
	payload := &domain.OrderPayload{
		Name:           details.Name,
		Phone:          details.Phone,
		Email:          details.Email,
		District:       details.District,
		SubDistrict:    details.SubDistrict,
		Street:         details.Street,
		Address:        details.Address,
		Items:          flattenItems(cart.Lines),
		Subtotal:       quote.Subtotal,
		Shipping:       quote.ShippingFee,
		Total:          quote.GrandTotal,
		Date:           uc.now().Format("2006-01-02 15:04:05"),
		IdempotencyKey: uuid.NewString(),
	}

	result, err := uc.intake.SubmitOrder(ctx, payload)
	if result != domain.SubmissionSent {
		uc.log.Errorf("Use Case: Order submission transport failure for session %s: %v", sessionID, err)
		uc.setSubmission(session, domain.SubmissionFailed)
		return nil, ErrSubmissionFailed
	}

	// Sent means the request left without a transport error, not that the
	// backend durably stored the order. That weak guarantee is inherent to
	// the intake contract and is surfaced through the result type.
	if err := uc.cartRepo.DeleteCart(sessionID); err != nil {
		uc.log.Errorf("Use Case: Failed to clear cart after submission for session %s: %v", sessionID, err)
	}
	session.Submission = domain.SubmissionSucceeded
	session.View = domain.ViewSuccess
	if err := uc.sessionRepo.SaveSession(session); err != nil {
		uc.log.Errorf("Use Case: Failed to save session %s after submission: %v", sessionID, err)
	}

	uc.log.Infof("Use Case: Order sent for session %s (key %s, total %d)", sessionID, payload.IdempotencyKey, payload.Total)
	return &CheckoutResult{
		OrderKey: payload.IdempotencyKey,
		Items:    payload.Items,
		Quote:    quote,
	}, nil
}

func (uc *checkoutUseCase) State(sessionID string) domain.SubmissionState {
	session, err := uc.sessionRepo.GetSession(sessionID)
	if err != nil {
		return domain.SubmissionIdle
	}
	return session.Submission
}

func (uc *checkoutUseCase) setSubmission(session *domain.Session, state domain.SubmissionState) {
	session.Submission = state
	if err := uc.sessionRepo.SaveSession(session); err != nil {
		uc.log.Errorf("Use Case: Failed to save submission state %s for session %s: %v", state, session.ID, err)
	}
}

func validateCustomerDetails(d domain.CustomerDetails) *domain.ValidationError {
	required := []struct {
		field string
		value string
	}{
		{"name", d.Name},
		{"phone", d.Phone},
		{"email", d.Email},
		{"district", d.District},
		{"subDistrict", d.SubDistrict},
		{"street", d.Street},
		{"address", d.Address},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &domain.ValidationError{Field: r.field, Reason: "cannot be empty"}
		}
	}

	local, dom, ok := strings.Cut(d.Email, "@")
	if !ok || local == "" || dom == "" {
		return &domain.ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

// flattenItems renders the cart as the "Name (Size) xQty, ..." summary the
// intake sheet stores in a single cell.
func flattenItems(lines []domain.CartLine) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.SelectedSize != "" {
			parts = append(parts, fmt.Sprintf("%s (%s) x%d", line.Name, line.SelectedSize, line.Quantity))
		} else {
			parts = append(parts, fmt.Sprintf("%s x%d", line.Name, line.Quantity))
		}
	}
	return strings.Join(parts, ", ")
}
