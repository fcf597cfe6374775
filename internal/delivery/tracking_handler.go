package delivery

import (
	"errors"
	"net/http"

	"unika_storefront/internal/clients"
	"unika_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TrackingHandler struct {
	trackingUseCase usecase.TrackingUseCase
	log             *logrus.Logger
}

func NewTrackingHandler(trackingUC usecase.TrackingUseCase, logger *logrus.Logger) *TrackingHandler {
	return &TrackingHandler{
		trackingUseCase: trackingUC,
		log:             logger,
	}
}

func (h *TrackingHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/track", h.Track)
}

func (h *TrackingHandler) Track(c *gin.Context) {
	query := c.Query("query")

	info, err := h.trackingUseCase.Track(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, clients.ErrOrderNotFound) {
			ErrorResponse(c, http.StatusNotFound, "No order found for that ID or phone number")
			return
		}
		h.log.Errorf("Tracking lookup failed for %q: %v", query, err)
		ErrorResponse(c, mapErrorToStatus(err), "Tracking lookup failed: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Order found", info)
}
