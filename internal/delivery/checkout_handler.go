package delivery

import (
	"errors"
	"net/http"

	"unika_storefront/internal/domain"
	"unika_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
	log             *logrus.Logger
}

func NewCheckoutHandler(checkoutUC usecase.CheckoutUseCase, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUC,
		log:             logger,
	}
}

func (h *CheckoutHandler) RegisterRoutes(router gin.IRouter) {
	checkout := router.Group("/checkout")
	{
		checkout.POST("", h.Submit)
		checkout.GET("/state", h.State)
	}
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Session identification missing")
		return
	}

	var details domain.CustomerDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.checkoutUseCase.Submit(c.Request.Context(), id, details)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			FieldErrorResponse(c, vErr)
			return
		}
		if errors.Is(err, usecase.ErrSubmissionFailed) {
			h.log.Errorf("Checkout submission failed for session %s: %v", id, err)
			ErrorResponse(c, http.StatusBadGateway, "Order could not be sent. Please try again.")
			return
		}
		h.log.Errorf("Checkout failed for session %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Checkout failed: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Order submitted", result)
}

func (h *CheckoutHandler) State(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Session identification missing")
		return
	}
	SuccessResponse(c, http.StatusOK, "Submission state", gin.H{
		"state": h.checkoutUseCase.State(id),
	})
}
