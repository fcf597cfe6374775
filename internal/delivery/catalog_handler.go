package delivery

import (
	"net/http"

	"unika_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	useCase usecase.CatalogUseCase
	log     *logrus.Logger
}

func NewCatalogHandler(uc usecase.CatalogUseCase, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CatalogHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.POST("/sync", h.SyncCatalog)
	}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.useCase.ListProducts()
	SuccessResponse(c, http.StatusOK, "Products retrieved", gin.H{
		"products": products,
		"syncing":  h.useCase.Syncing(),
	})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		h.log.Warnf("Failed to get product %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve product: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Product retrieved", product)
}

// SyncCatalog triggers a refresh from the external inventory service. The
// sync itself never fails outward; the current list is retained on error.
func (h *CatalogHandler) SyncCatalog(c *gin.Context) {
	h.useCase.Sync(c.Request.Context())
	SuccessResponse(c, http.StatusOK, "Catalog sync completed", gin.H{
		"products": h.useCase.ListProducts(),
	})
}
