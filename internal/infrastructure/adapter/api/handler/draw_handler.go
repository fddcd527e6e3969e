package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/middleware"
)

// DrawHandler handles draws and winner HTTP requests
type DrawHandler struct {
	draws  usecase.DrawUseCase
	logger coreport.Logger
}

// NewDrawHandler creates a new draw handler instance
func NewDrawHandler(draws usecase.DrawUseCase, logger coreport.Logger) *DrawHandler {
	return &DrawHandler{draws: draws, logger: logger}
}

// DrawMultiple handles POST /api/admin/raffles/:id/draw
func (h *DrawHandler) DrawMultiple(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	winners, err := h.draws.SelectMultipleWinners(c.Request.Context(), raffleID, middleware.ActorID(c))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MapSlice(winners, dto.NewWinnerResponse))
}

// DrawSingle handles POST /api/admin/raffles/:id/draw/single
func (h *DrawHandler) DrawSingle(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	winner, err := h.draws.SelectSingleWinner(c.Request.Context(), raffleID, middleware.ActorID(c))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewWinnerResponse(winner))
}

// ListWinners handles GET /api/raffles/:id/winners
func (h *DrawHandler) ListWinners(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	winners, err := h.draws.ListWinners(c.Request.Context(), raffleID)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapSlice(winners, dto.NewWinnerResponse))
}

// ListAllWinners handles GET /api/admin/winners
func (h *DrawHandler) ListAllWinners(c *gin.Context) {
	var query dto.PageQuery
	if err := bindQuery(c, &query); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	page, err := h.draws.ListAllWinners(c.Request.Context(), query.Pagination())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewWinnerResponse))
}

// UpdateDelivery handles PATCH /api/admin/winners/:id/delivery
func (h *DrawHandler) UpdateDelivery(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	var req dto.DeliveryRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	winner, err := h.draws.UpdateDelivery(c.Request.Context(), id, req.ToInput())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWinnerResponse(winner))
}
