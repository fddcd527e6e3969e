package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/middleware"
)

// PrizeHandler handles prize HTTP requests
type PrizeHandler struct {
	prizes usecase.PrizeUseCase
	logger coreport.Logger
}

// NewPrizeHandler creates a new prize handler instance
func NewPrizeHandler(prizes usecase.PrizeUseCase, logger coreport.Logger) *PrizeHandler {
	return &PrizeHandler{prizes: prizes, logger: logger}
}

// ListByRaffle handles GET /api/raffles/:id/prizes and lists active prizes only
func (h *PrizeHandler) ListByRaffle(c *gin.Context) {
	h.list(c, false)
}

// ListAllByRaffle handles GET /api/admin/raffles/:id/prizes. all=true includes inactive prizes.
func (h *PrizeHandler) ListAllByRaffle(c *gin.Context) {
	h.list(c, c.Query("all") == "true")
}

func (h *PrizeHandler) list(c *gin.Context, includeInactive bool) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	prizes, err := h.prizes.ListByRaffle(c.Request.Context(), raffleID, includeInactive)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapSlice(prizes, dto.NewPrizeResponse))
}

// Create handles POST /api/admin/raffles/:id/prizes
func (h *PrizeHandler) Create(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	var req dto.PrizeRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	prize, err := h.prizes.Create(c.Request.Context(), raffleID, req.ToInput())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPrizeResponse(prize))
}

// CreateBatch handles POST /api/admin/raffles/:id/prizes/batch
func (h *PrizeHandler) CreateBatch(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	var req dto.PrizeBatchRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	prizes, err := h.prizes.CreateBatch(c.Request.Context(), raffleID, dto.MapSlice(req.Prizes, dto.PrizeRequest.ToInput))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MapSlice(prizes, dto.NewPrizeResponse))
}

// FreePositions handles GET /api/admin/raffles/:id/prizes/free-positions?upTo=
func (h *PrizeHandler) FreePositions(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	upTo, err := intQuery(c, "upTo", 0)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	positions, err := h.prizes.FreePositions(c.Request.Context(), raffleID, upTo)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FreePositionsResponse{RaffleID: raffleID, Positions: positions})
}

// Get handles GET /api/admin/prizes/:id
func (h *PrizeHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	prize, err := h.prizes.Get(c.Request.Context(), id)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPrizeResponse(prize))
}

// Update handles PUT /api/admin/prizes/:id
func (h *PrizeHandler) Update(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	var req dto.PrizeRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	prize, err := h.prizes.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPrizeResponse(prize))
}

// Delete handles DELETE /api/admin/prizes/:id
func (h *PrizeHandler) Delete(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	if err := h.prizes.Delete(c.Request.Context(), id); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Assign handles POST /api/admin/prizes/:id/assign
func (h *PrizeHandler) Assign(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	var req dto.AssignPrizeRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	prize, err := h.prizes.Assign(c.Request.Context(), id, req.TicketID)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPrizeResponse(prize))
}

// Unassign handles POST /api/admin/prizes/:id/unassign
func (h *PrizeHandler) Unassign(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	prize, err := h.prizes.Unassign(c.Request.Context(), id)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPrizeResponse(prize))
}
