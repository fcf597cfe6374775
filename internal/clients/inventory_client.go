package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"unika_storefront/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

// AdminData is the untouched back-office payload from the external store:
// products, orders, chat transcripts and computed stats. The dashboard
// passes it through without reshaping.
type AdminData struct {
	Products json.RawMessage `json:"products"`
	Orders   json.RawMessage `json:"orders"`
	Chats    json.RawMessage `json:"chats"`
	Stats    json.RawMessage `json:"stats"`
}

type InventoryClient interface {
	FetchCatalog(ctx context.Context) ([]domain.Product, error)
	FetchAdminData(ctx context.Context) (*AdminData, error)
	SaveProduct(ctx context.Context, product domain.Product) error
}

type inventoryHTTPClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	log     *logrus.Logger
}

func NewInventoryHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) InventoryClient {
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "inventory",
		Timeout: 30 * time.Second,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf("InventoryClient: Circuit breaker '%s' changed state: %s -> %s", name, from, to)
		},
	})
	return &inventoryHTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		breaker: breaker,
		log:     logger,
	}
}

// rawProduct tolerates the loose typing of the external sheet: IDs and
// prices arrive as numbers or strings depending on how the row was edited.
type rawProduct struct {
	ID          any    `json:"id"`
	Name        string `json:"name"`
	Price       any    `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

func (p rawProduct) toDomain() domain.Product {
	product := domain.Product{
		ID:          stringify(p.ID),
		Name:        p.Name,
		Price:       toInt(p.Price),
		Description: p.Description,
		Image:       p.Image,
		Category:    domain.Category(p.Category),
	}
	if product.Name == "" {
		product.Name = "Untitled T-Shirt"
	}
	if !domain.IsValidCategory(product.Category) {
		product.Category = domain.CategoryModern
	}
	return product
}

func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(value)
	}
}

func toInt(v any) int {
	switch value := v.(type) {
	case float64:
		return int(value)
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func (c *inventoryHTTPClient) fetchAdminData(ctx context.Context) ([]byte, error) {
	target := fmt.Sprintf("%s?action=getAdminData", c.baseURL)

	return c.breaker.Execute(func() ([]byte, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create inventory request: %w", reqErr)
		}

		resp, doErr := c.client.Do(req)
		if doErr != nil {
			return nil, fmt.Errorf("failed to reach inventory service: %w", doErr)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("inventory service returned status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	})
}

func (c *inventoryHTTPClient) FetchCatalog(ctx context.Context) ([]domain.Product, error) {
	c.log.Infof("InventoryClient: Fetching catalog from %s", c.baseURL)

	body, err := c.fetchAdminData(ctx)
	if err != nil {
		c.log.Errorf("InventoryClient: Catalog fetch failed: %v", err)
		return nil, err
	}

	var payload struct {
		Products []rawProduct `json:"products"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.log.Errorf("InventoryClient: Failed to decode catalog response: %v", err)
		return nil, fmt.Errorf("invalid catalog response: %w", err)
	}
	if payload.Products == nil {
		c.log.Warn("InventoryClient: Catalog response is missing the products field")
		return nil, fmt.Errorf("catalog response has no products field")
	}

	products := make([]domain.Product, 0, len(payload.Products))
	for _, raw := range payload.Products {
		products = append(products, raw.toDomain())
	}
	c.log.Infof("InventoryClient: Fetched %d catalog records", len(products))
	return products, nil
}

func (c *inventoryHTTPClient) FetchAdminData(ctx context.Context) (*AdminData, error) {
	c.log.Info("InventoryClient: Fetching admin dashboard data")

	body, err := c.fetchAdminData(ctx)
	if err != nil {
		c.log.Errorf("InventoryClient: Admin data fetch failed: %v", err)
		return nil, err
	}

	var data AdminData
	if err := json.Unmarshal(body, &data); err != nil {
		c.log.Errorf("InventoryClient: Failed to decode admin data: %v", err)
		return nil, fmt.Errorf("invalid admin data response: %w", err)
	}
	return &data, nil
}

func (c *inventoryHTTPClient) SaveProduct(ctx context.Context, product domain.Product) error {
	body, err := json.Marshal(map[string]any{
		"adminAction": "saveProduct",
		"product":     product,
	})
	if err != nil {
		return fmt.Errorf("failed to prepare product payload: %w", err)
	}

	c.log.Infof("InventoryClient: Saving product %s (%s)", product.ID, product.Name)

	_, err = c.breaker.Execute(func() ([]byte, error) {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(body))
		if reqErr != nil {
			return nil, fmt.Errorf("failed to create product save request: %w", reqErr)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, doErr := c.client.Do(req)
		if doErr != nil {
			return nil, fmt.Errorf("failed to reach inventory service: %w", doErr)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("inventory service returned status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		c.log.Errorf("InventoryClient: Product save failed for %s: %v", product.ID, err)
		return err
	}
	return nil
}
