package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/middleware"
)

// RaffleHandler handles raffle and active raffle HTTP requests
type RaffleHandler struct {
	raffles usecase.RaffleUseCase
	active  usecase.ActiveRaffleUseCase
	logger  coreport.Logger
}

// NewRaffleHandler creates a new raffle handler instance
func NewRaffleHandler(raffles usecase.RaffleUseCase, active usecase.ActiveRaffleUseCase, logger coreport.Logger) *RaffleHandler {
	return &RaffleHandler{raffles: raffles, active: active, logger: logger}
}

// GetActive handles GET /api/raffles/active
func (h *RaffleHandler) GetActive(c *gin.Context) {
	active, err := h.active.GetActive(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewActiveRaffleResponse(active))
}

// Get handles GET /api/raffles/:id
func (h *RaffleHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	raffle, err := h.raffles.Get(c.Request.Context(), id)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRaffleResponse(raffle))
}

// List handles GET /api/admin/raffles
func (h *RaffleHandler) List(c *gin.Context) {
	var query dto.RaffleListQuery
	if err := bindQuery(c, &query); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	page, err := h.raffles.List(c.Request.Context(), query.State, query.Pagination())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewRaffleResponse))
}

// Create handles POST /api/admin/raffles
func (h *RaffleHandler) Create(c *gin.Context) {
	var req dto.CreateRaffleRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	raffle, err := h.raffles.Create(c.Request.Context(), req.ToInput(middleware.ActorID(c)))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewRaffleResponse(raffle))
}

// Update handles PUT /api/admin/raffles/:id
func (h *RaffleHandler) Update(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	var req dto.UpdateRaffleRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	raffle, err := h.raffles.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRaffleResponse(raffle))
}

// Cancel handles DELETE /api/admin/raffles/:id. Raffles are cancelled, never deleted.
func (h *RaffleHandler) Cancel(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	raffle, err := h.raffles.Cancel(c.Request.Context(), id)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRaffleResponse(raffle))
}

// CanSell handles GET /api/admin/raffles/:id/can-sell?count=
func (h *RaffleHandler) CanSell(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	count, err := intQuery(c, "count", 1)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	ok, err := h.raffles.CanSell(c.Request.Context(), id, count)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.CanSellResponse{RaffleID: id, Count: count, CanSell: ok})
}

// Stats handles GET /api/admin/raffles/stats
func (h *RaffleHandler) Stats(c *gin.Context) {
	stats, err := h.raffles.Stats(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CheckSoldCounter handles GET /api/admin/raffles/:id/consistency
func (h *RaffleHandler) CheckSoldCounter(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	report, err := h.raffles.CheckSoldCounter(c.Request.Context(), id)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Activate handles PUT /api/admin/active-raffle/:id
func (h *RaffleHandler) Activate(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	active, err := h.active.Activate(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewActiveRaffleResponse(active))
}

// DeactivateAll handles DELETE /api/admin/active-raffle
func (h *RaffleHandler) DeactivateAll(c *gin.Context) {
	if err := h.active.DeactivateAll(c.Request.Context()); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "No raffle is active"})
}
