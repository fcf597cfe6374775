package delivery

import (
	"net/http"
	"strings"

	"unika_storefront/internal/domain"
	"unika_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	cartUseCase    usecase.CartUseCase
	catalogUseCase usecase.CatalogUseCase
	sessionUseCase usecase.SessionUseCase
	pricing        *usecase.PricingPolicy
	customPrice    int
	log            *logrus.Logger
}

func NewCartHandler(
	cartUC usecase.CartUseCase,
	catalogUC usecase.CatalogUseCase,
	sessionUC usecase.SessionUseCase,
	pricing *usecase.PricingPolicy,
	customPrice int,
	logger *logrus.Logger,
) *CartHandler {
	return &CartHandler{
		cartUseCase:    cartUC,
		catalogUseCase: catalogUC,
		sessionUseCase: sessionUC,
		pricing:        pricing,
		customPrice:    customPrice,
		log:            logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items", h.UpdateQuantity)
		cart.DELETE("/items", h.RemoveItem)
	}
}

// cartView is what every cart endpoint returns: the lines plus the derived
// count and a fresh pricing quote, so callers never hold stale totals.
func (h *CartHandler) cartView(cart *domain.Cart, zone domain.Zone) gin.H {
	return gin.H{
		"cart":  cart,
		"count": cart.Count(),
		"quote": h.pricing.Quote(cart, zone),
	}
}

func (h *CartHandler) zoneFor(id string) domain.Zone {
	session, err := h.sessionUseCase.Get(id)
	if err != nil {
		return domain.ZoneLocal
	}
	return session.Zone
}

func (h *CartHandler) GetCart(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Session identification missing")
		return
	}

	cart, err := h.cartUseCase.GetCart(id)
	if err != nil {
		h.log.Errorf("Failed to get cart for session %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve cart: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart retrieved", h.cartView(cart, h.zoneFor(id)))
}

type addItemRequest struct {
	ProductID string          `json:"productId"`
	Product   *domain.Product `json:"product"`
	Size      string          `json:"size"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Session identification missing")
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Catalog products are referenced by ID; AI-designed customs arrive as
	// full product records because they never live in the catalog. Inline
	// records are only accepted for customs, and the price is always taken
	// from server configuration, never from the client.
	var product *domain.Product
	switch {
	case req.ProductID != "":
		found, err := h.catalogUseCase.GetProductByID(req.ProductID)
		if err != nil {
			h.log.Warnf("Add to cart with unknown product %s: %v", req.ProductID, err)
			ErrorResponse(c, mapErrorToStatus(err), "Failed to add item: "+err.Error())
			return
		}
		product = found
	case req.Product != nil:
		if !strings.HasPrefix(req.Product.ID, "custom-") || req.Product.Category != domain.CategoryCustom {
			h.log.Warnf("Rejected inline non-custom product %q", req.Product.ID)
			ErrorResponse(c, http.StatusBadRequest, "Invalid request: only custom designs may be added inline")
			return
		}
		req.Product.Price = h.customPrice
		product = req.Product
	default:
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: productId or product is required")
		return
	}

	cart, err := h.cartUseCase.AddItem(id, *product, req.Size)
	if err != nil {
		h.log.Errorf("Failed to add item for session %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to add item: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Item added", h.cartView(cart, h.zoneFor(id)))
}

// Delta carries no binding tag: "required" would reject an explicit zero,
// which is a legitimate no-op adjustment.
type updateQuantityRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Delta     int    `json:"delta"`
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Session identification missing")
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.cartUseCase.UpdateQuantity(id, req.ProductID, req.Size, req.Delta)
	if err != nil {
		h.log.Errorf("Failed to update quantity for session %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update quantity: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Quantity updated", h.cartView(cart, h.zoneFor(id)))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Session identification missing")
		return
	}

	productID := c.Query("productId")
	if productID == "" {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request: productId query parameter is required")
		return
	}
	size := c.Query("size")

	cart, err := h.cartUseCase.RemoveItem(id, productID, size)
	if err != nil {
		h.log.Errorf("Failed to remove item for session %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to remove item: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Item removed", h.cartView(cart, h.zoneFor(id)))
}
