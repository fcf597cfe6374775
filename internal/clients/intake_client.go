package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"unika_storefront/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

var ErrOrderNotFound = errors.New("no order found for this query")

// OrderIntakeClient talks to the external order-intake endpoint: order
// submission, tracking lookups and admin order updates.
type OrderIntakeClient interface {
	// SubmitOrder posts the order payload. SubmissionSent only means the
	// request left without a transport error; the caller must not treat it
	// as confirmed persistence.
	SubmitOrder(ctx context.Context, payload *domain.OrderPayload) (domain.SubmissionResult, error)
	TrackOrder(ctx context.Context, query string) (*domain.TrackingInfo, error)
	UpdateOrderStatus(ctx context.Context, orderID, status, courier string) error
	// SaveChatMessage appends a stylist chat line to the backend transcript
	// so the admin dashboard can read it back.
	SaveChatMessage(ctx context.Context, customerID, sender, message string) error
}

type intakeHTTPClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	log     *logrus.Logger
}

func NewIntakeHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) OrderIntakeClient {
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "order-intake",
		Timeout: 30 * time.Second,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf("IntakeClient: Circuit breaker '%s' changed state: %s -> %s", name, from, to)
		},
	})
	return &intakeHTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		breaker: breaker,
		log:     logger,
	}
}

func (c *intakeHTTPClient) SubmitOrder(ctx context.Context, payload *domain.OrderPayload) (domain.SubmissionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		c.log.Errorf("IntakeClient: Failed to marshal order payload (key %s): %v", payload.IdempotencyKey, err)
		return domain.SubmissionTransportFailed, fmt.Errorf("failed to prepare order payload: %w", err)
	}

	c.log.Infof("IntakeClient: Submitting order (key %s, total %d) to %s", payload.IdempotencyKey, payload.Total, c.baseURL)

	_, err = c.breaker.Execute(func() ([]byte, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(body))
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create order request: %w", reqErr)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, doErr := c.client.Do(req)
		if doErr != nil {
			return nil, fmt.Errorf("failed to reach order intake: %w", doErr)
		}
		defer resp.Body.Close()

		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read intake response: %w", readErr)
		}
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("order intake returned status %d", resp.StatusCode)
		}
		return respBody, nil
	})
	if err != nil {
		c.log.Errorf("IntakeClient: Order submission transport error (key %s): %v", payload.IdempotencyKey, err)
		return domain.SubmissionTransportFailed, err
	}

	c.log.Infof("IntakeClient: Order request sent (key %s)", payload.IdempotencyKey)
	return domain.SubmissionSent, nil
}

type trackingResponse struct {
	Error   string      `json:"error"`
	ID      string      `json:"id"`
	Status  string      `json:"status"`
	Date    string      `json:"date"`
	Total   json.Number `json:"total"`
	Items   string      `json:"items"`
	Courier string      `json:"courier"`
}

func (c *intakeHTTPClient) TrackOrder(ctx context.Context, query string) (*domain.TrackingInfo, error) {
	target := fmt.Sprintf("%s?track=%s", c.baseURL, url.QueryEscape(query))
	c.log.Infof("IntakeClient: Tracking lookup for query %q", query)

	respBody, err := c.breaker.Execute(func() ([]byte, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create tracking request: %w", reqErr)
		}

		resp, doErr := c.client.Do(req)
		if doErr != nil {
			return nil, fmt.Errorf("failed to reach order intake: %w", doErr)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("order intake returned status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		c.log.Errorf("IntakeClient: Tracking lookup failed for %q: %v", query, err)
		return nil, err
	}

	var tracked trackingResponse
	if err := json.Unmarshal(respBody, &tracked); err != nil {
		c.log.Errorf("IntakeClient: Failed to decode tracking response for %q: %v", query, err)
		return nil, fmt.Errorf("invalid tracking response: %w", err)
	}
	if tracked.Error != "" {
		c.log.Warnf("IntakeClient: No order found for query %q", query)
		return nil, ErrOrderNotFound
	}

	info := &domain.TrackingInfo{
		OrderID: tracked.ID,
		Status:  domain.NormalizeTrackingStatus(tracked.Status),
		Date:    tracked.Date,
		Items:   tracked.Items,
		Total:   tracked.Total.String(),
		Courier: tracked.Courier,
	}
	if info.OrderID == "" {
		info.OrderID = "UNIKA-PENDING"
	}
	return info, nil
}

func (c *intakeHTTPClient) SaveChatMessage(ctx context.Context, customerID, sender, message string) error {
	if customerID == "" {
		customerID = "anonymous"
	}

	body, err := json.Marshal(map[string]string{
		"chatAction": "saveMessage",
		"sender":     sender,
		"message":    message,
		"customerId": customerID,
	})
	if err != nil {
		return fmt.Errorf("failed to prepare chat message: %w", err)
	}

	c.log.Debugf("IntakeClient: Saving chat message from %q for customer %s", sender, customerID)

	_, err = c.breaker.Execute(func() ([]byte, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(body))
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create chat save request: %w", reqErr)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, doErr := c.client.Do(req)
		if doErr != nil {
			return nil, fmt.Errorf("failed to reach order intake: %w", doErr)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("order intake returned status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		c.log.Warnf("IntakeClient: Chat message save failed for customer %s: %v", customerID, err)
		return err
	}
	return nil
}

func (c *intakeHTTPClient) UpdateOrderStatus(ctx context.Context, orderID, status, courier string) error {
	body, err := json.Marshal(map[string]string{
		"adminAction": "updateOrder",
		"orderId":     orderID,
		"status":      status,
		"courier":     courier,
	})
	if err != nil {
		return fmt.Errorf("failed to prepare order update: %w", err)
	}

	c.log.Infof("IntakeClient: Updating order %s (status %q, courier %q)", orderID, status, courier)

	_, err = c.breaker.Execute(func() ([]byte, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(body))
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create order update request: %w", reqErr)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, doErr := c.client.Do(req)
		if doErr != nil {
			return nil, fmt.Errorf("failed to reach order intake: %w", doErr)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("order intake returned status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		c.log.Errorf("IntakeClient: Order update failed for %s: %v", orderID, err)
		return err
	}
	return nil
}
