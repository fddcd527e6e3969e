package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/dto"
)

var categoryStatus = map[domainerr.Category]int{
	domainerr.CategoryValidation:   http.StatusBadRequest,
	domainerr.CategoryUnauthorized: http.StatusUnauthorized,
	domainerr.CategoryNotFound:     http.StatusNotFound,
	domainerr.CategoryConflict:     http.StatusConflict,
	domainerr.CategoryUnavailable:  http.StatusServiceUnavailable,
	domainerr.CategoryInternal:     http.StatusInternalServerError,
}

// StatusFor returns the HTTP status of an error based on its category
func StatusFor(err error) int {
	if status, ok := categoryStatus[domainerr.CategoryOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the response body for err. Server errors never expose their details.
func NewErrorResponse(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}

	var validationErr *domainerr.ValidationError
	if errors.As(err, &validationErr) {
		resp.Field = validationErr.Field
	}

	if StatusFor(err) >= http.StatusInternalServerError {
		resp.Message = "Internal server error"
		if domainerr.CategoryOf(err) == domainerr.CategoryUnavailable {
			resp.Message = domainerr.ErrPaymentMethodsUnavailable.Error()
		}
	}
	return resp
}

// RespondError aborts the request with the mapped status and error body
func RespondError(c *gin.Context, logger coreport.Logger, err error) {
	status := StatusFor(err)
	_ = c.Error(err)

	fields := map[string]any{
		"error":      err.Error(),
		"status":     status,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString(RequestIDKey),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request refused", fields)
	}

	c.AbortWithStatusJSON(status, NewErrorResponse(err))
}

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(RequestIDKey),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
