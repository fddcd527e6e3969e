package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/security"
	timeprovider "github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/time"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"Validation", domainerr.NewValidationError(domainerr.ErrInvalidBuyer, "email", "is invalid"), http.StatusBadRequest},
		{"Number out of range", domainerr.NewNumberError(1, 11, domainerr.ErrNumberOutOfRange), http.StatusBadRequest},
		{"Unauthorized", security.ErrExpiredToken, http.StatusUnauthorized},
		{"Not found", fmt.Errorf("loading: %w", domainerr.ErrRaffleNotFound), http.StatusNotFound},
		{"Conflict", domainerr.NewNumberError(1, 3, domainerr.ErrNumberUnavailable), http.StatusConflict},
		{"Draw in progress", domainerr.ErrDrawInProgress, http.StatusConflict},
		{"Unavailable", domainerr.ErrPaymentMethodsUnavailable, http.StatusServiceUnavailable},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusFor(tt.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Run("Validation error names the field", func(t *testing.T) {
		resp := NewErrorResponse(domainerr.NewValidationError(domainerr.ErrInvalidBuyer, "email", "is invalid"))

		assert.Equal(t, domainerr.CodeInvalidBuyer, resp.Code)
		assert.Equal(t, "email", resp.Field)
		assert.Contains(t, resp.Message, "is invalid")
	})

	t.Run("Server errors hide details", func(t *testing.T) {
		resp := NewErrorResponse(fmt.Errorf("%w: dial tcp 10.0.0.1:5432", domainerr.ErrDatabaseConnection))

		assert.Equal(t, domainerr.CodeDatabaseConnection, resp.Code)
		assert.Equal(t, "Internal server error", resp.Message)
	})

	t.Run("Unavailable keeps a stable message", func(t *testing.T) {
		resp := NewErrorResponse(fmt.Errorf("%w: timeout", domainerr.ErrPaymentMethodsUnavailable))

		assert.Equal(t, domainerr.CodePaymentMethodsUnavailable, resp.Code)
		assert.Equal(t, domainerr.ErrPaymentMethodsUnavailable.Error(), resp.Message)
	})
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler(logger.NewNoopLogger()))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domainerr.CodeInternalServer, decodeError(t, w).Code)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestIDFromContext(c.Request.Context()))
	})

	t.Run("Generated when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Caller id is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-123", w.Body.String())
	})
}

func TestAdminAuth(t *testing.T) {
	tp := timeprovider.NewFixedTimeProvider(time.Now())
	tokens, err := security.NewTokenManager("secret", "raffle", time.Hour, tp)
	require.NoError(t, err)
	valid, err := tokens.Issue("admin-9", "")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/admin", AdminAuth(tokens, logger.NewNoopLogger()), func(c *gin.Context) {
		c.String(http.StatusOK, ActorID(c))
	})

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"Valid token", "Bearer " + valid, http.StatusOK, "admin-9"},
		{"Lowercase scheme", "bearer " + valid, http.StatusOK, "admin-9"},
		{"Missing header", "", http.StatusUnauthorized, ""},
		{"Wrong scheme", "Basic " + valid, http.StatusUnauthorized, ""},
		{"Garbage token", "Bearer nope", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, w.Body.String())
				return
			}
			assert.Equal(t, domainerr.CodeUnauthorized, decodeError(t, w).Code)
		})
	}
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://shop.example"}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://shop.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Other origin gets no headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://shop.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})
}
