package delivery

import (
	"net/http"

	"unika_storefront/internal/domain"
	"unika_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SessionHandler struct {
	useCase usecase.SessionUseCase
	log     *logrus.Logger
}

func NewSessionHandler(uc usecase.SessionUseCase, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *SessionHandler) RegisterRoutes(router gin.IRouter) {
	sessions := router.Group("/sessions")
	{
		sessions.POST("", h.StartSession)
		sessions.GET("", h.GetSession)
		sessions.PUT("/view", h.SetView)
		sessions.PUT("/zone", h.SetZone)
	}
}

func (h *SessionHandler) StartSession(c *gin.Context) {
	session, err := h.useCase.Start()
	if err != nil {
		h.log.Errorf("Failed to start session: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to start session")
		return
	}

	c.Header("X-Session-ID", session.ID)
	SuccessResponse(c, http.StatusCreated, "Session started", session)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Session identification missing")
		return
	}

	session, err := h.useCase.Get(id)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to retrieve session: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Session retrieved", session)
}

func (h *SessionHandler) SetView(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Session identification missing")
		return
	}

	var req struct {
		View domain.View `json:"view" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session, err := h.useCase.SetView(id, req.View)
	if err != nil {
		h.log.Warnf("Failed to set view for session %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to set view: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "View updated", session)
}

func (h *SessionHandler) SetZone(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Session identification missing")
		return
	}

	var req struct {
		Zone domain.Zone `json:"zone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session, err := h.useCase.SetZone(id, req.Zone)
	if err != nil {
		h.log.Warnf("Failed to set zone for session %s: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to set zone: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Shipping zone updated", session)
}
