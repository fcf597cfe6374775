package delivery

import (
	"net/http"
	"strings"

	"unika_storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DesignerHandler struct {
	designerUseCase usecase.DesignerUseCase
	log             *logrus.Logger
}

func NewDesignerHandler(designerUC usecase.DesignerUseCase, logger *logrus.Logger) *DesignerHandler {
	return &DesignerHandler{
		designerUseCase: designerUC,
		log:             logger,
	}
}

func (h *DesignerHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/designer", h.GenerateDesign)
	router.POST("/stylist", h.StylingAdvice)
}

type designRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (h *DesignerHandler) GenerateDesign(c *gin.Context) {
	var req designRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request: prompt cannot be empty")
		return
	}

	result, err := h.designerUseCase.GenerateDesign(c.Request.Context(), req.Prompt)
	if err != nil {
		h.log.Errorf("Design generation failed: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Design generation failed: "+err.Error())
		return
	}
	if result == nil {
		// The model produced no image. Not a server fault, the caller just
		// retries with a different prompt.
		ErrorResponse(c, http.StatusUnprocessableEntity, "Could not generate a design for that prompt")
		return
	}
	SuccessResponse(c, http.StatusOK, "Design generated", result)
}

type stylistRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *DesignerHandler) StylingAdvice(c *gin.Context) {
	var req stylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// The session ID keys the backend chat transcript; browsing without a
	// session still gets advice, the transcript line is just anonymous.
	id, _ := sessionID(c)
	reply := h.designerUseCase.StylingAdvice(c.Request.Context(), id, req.Message)
	SuccessResponse(c, http.StatusOK, "Stylist reply", gin.H{"reply": reply})
}
