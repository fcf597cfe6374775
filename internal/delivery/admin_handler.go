package delivery

import (
	"net/http"
	"strings"

	"unika_storefront/internal/domain"
	"unika_storefront/internal/middleware"
	"unika_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	log          *logrus.Logger
}

func NewAdminHandler(adminUC usecase.AdminUseCase, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUC,
		log:          logger,
	}
}

func (h *AdminHandler) RegisterRoutes(router gin.IRouter) {
	admin := router.Group("/admin")
	{
		admin.POST("/login", h.Login)

		protected := admin.Group("")
		protected.Use(middleware.AdminAuth(h.adminUseCase, h.log))
		{
			protected.POST("/logout", h.Logout)
			protected.GET("/dashboard", h.Dashboard)
			protected.POST("/products", h.SaveProduct)
			protected.POST("/orders/status", h.UpdateOrderStatus)
		}
	}
}

type loginRequest struct {
	LoginID  string `json:"loginId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	auth, err := h.adminUseCase.Authenticate(req.LoginID, req.Password)
	if err != nil {
		h.log.Errorf("Admin login failed for %s: %v", req.LoginID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Login failed: "+err.Error())
		return
	}
	if !auth.Authenticated {
		ErrorResponse(c, http.StatusUnauthorized, auth.ErrorMessage)
		return
	}
	SuccessResponse(c, http.StatusOK, "Login successful", gin.H{"token": auth.Token})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	token := c.GetString("rawToken")
	h.adminUseCase.Logout(token)
	SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	data, err := h.adminUseCase.Dashboard(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to load admin dashboard: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to load dashboard: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Dashboard data", data)
}

func (h *AdminHandler) SaveProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.adminUseCase.SaveProduct(c.Request.Context(), product); err != nil {
		h.log.Errorf("Failed to save product %s: %v", product.ID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to save product: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Product saved", product)
}

type orderStatusRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
	Courier string `json:"courier"`
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.OrderID) == "" {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request: orderId cannot be empty")
		return
	}

	if err := h.adminUseCase.UpdateOrderStatus(c.Request.Context(), req.OrderID, req.Status, req.Courier); err != nil {
		h.log.Errorf("Failed to update order %s: %v", req.OrderID, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to update order: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Order updated", nil)
}
