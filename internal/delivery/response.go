package delivery

import (
	"errors"
	"net/http"
	"strings"

	"unika_storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// FieldErrorResponse surfaces a checkout validation failure with the exact
// field that caused it.
func FieldErrorResponse(c *gin.Context, vErr *domain.ValidationError) {
	c.JSON(http.StatusBadRequest, Response{
		Status:  "Fail",
		Message: vErr.Error(),
		Data:    gin.H{"field": vErr.Field},
	})
}

func mapErrorToStatus(err error) int {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "not found") || strings.Contains(errMsg, "no order found") {
		return http.StatusNotFound
	}
	if strings.Contains(errMsg, "already exists") || strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint") {
		return http.StatusConflict
	}
	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "cannot be empty") || strings.Contains(errMsg, "must be positive") {
		return http.StatusBadRequest
	}
	if strings.Contains(errMsg, "failed to reach") || strings.Contains(errMsg, "try again") || strings.Contains(errMsg, "circuit breaker is open") {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// sessionID pulls the caller's session from the X-Session-ID header. Every
// cart and checkout route requires one; POST /sessions issues them.
func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Session-ID")
	return id, id != ""
}
