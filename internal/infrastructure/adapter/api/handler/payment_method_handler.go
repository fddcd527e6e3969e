package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/middleware"
)

// PaymentMethodHandler handles payment method HTTP requests
type PaymentMethodHandler struct {
	methods usecase.PaymentMethodUseCase
	logger  coreport.Logger
}

// NewPaymentMethodHandler creates a new payment method handler instance
func NewPaymentMethodHandler(methods usecase.PaymentMethodUseCase, logger coreport.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{methods: methods, logger: logger}
}

// ListActive handles GET /api/payment-methods
func (h *PaymentMethodHandler) ListActive(c *gin.Context) {
	methods, err := h.methods.ListActive(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapSlice(methods, dto.NewPaymentMethodResponse))
}

// ListAll handles GET /api/admin/payment-methods
func (h *PaymentMethodHandler) ListAll(c *gin.Context) {
	methods, err := h.methods.ListAll(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapSlice(methods, dto.NewPaymentMethodResponse))
}

// Get handles GET /api/admin/payment-methods/:code
func (h *PaymentMethodHandler) Get(c *gin.Context) {
	method, err := h.methods.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentMethodResponse(*method))
}

// Create handles POST /api/admin/payment-methods
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req dto.PaymentMethodRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	method, err := h.methods.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPaymentMethodResponse(*method))
}

// Update handles PUT /api/admin/payment-methods/:code
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	var req dto.PaymentMethodRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	method, err := h.methods.Update(c.Request.Context(), c.Param("code"), req.ToInput())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentMethodResponse(*method))
}

// Delete handles DELETE /api/admin/payment-methods/:code
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	if err := h.methods.Delete(c.Request.Context(), c.Param("code")); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Toggle handles PATCH /api/admin/payment-methods/:code/toggle
func (h *PaymentMethodHandler) Toggle(c *gin.Context) {
	method, err := h.methods.Toggle(c.Request.Context(), c.Param("code"))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaymentMethodResponse(*method))
}
