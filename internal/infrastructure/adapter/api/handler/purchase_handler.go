package handler

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domainerr "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/api/middleware"
)

// multipartOverhead leaves room for the form fields next to the proof file
const multipartOverhead = 1 << 20

// PurchaseHandler handles purchases, transaction transitions and ticket queries
type PurchaseHandler struct {
	purchases     usecase.PurchaseUseCase
	tickets       usecase.TicketQueryUseCase
	maxProofBytes int64
	logger        coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(purchases usecase.PurchaseUseCase, tickets usecase.TicketQueryUseCase, maxProofBytes int64, logger coreport.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchases:     purchases,
		tickets:       tickets,
		maxProofBytes: maxProofBytes,
		logger:        logger,
	}
}

// Purchase handles POST /api/raffles/:id/purchases.
// Multipart requests carry the JSON document in the "purchase" field and the optional "proof" file.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	var req dto.PurchaseRequest
	var proof *gateway.ProofFile

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxProofBytes+multipartOverhead)

		if err := decodePurchaseField(c.PostForm("purchase"), &req); err != nil {
			middleware.RespondError(c, h.logger, err)
			return
		}

		file, closeFile, err := proofFromForm(c, false)
		if err != nil {
			middleware.RespondError(c, h.logger, err)
			return
		}
		defer closeFile()
		proof = file
	} else if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	result, err := h.purchases.Purchase(c.Request.Context(), req.ToInput(raffleID, proof))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	h.logger.Info("Purchase completed", map[string]any{
		"raffle_id":      raffleID,
		"transaction_id": result.TransactionID,
		"tickets":        len(result.Tickets),
		"request_id":     c.GetString(middleware.RequestIDKey),
	})
	c.JSON(http.StatusCreated, dto.NewPurchaseResponse(result))
}

func decodePurchaseField(raw string, req *dto.PurchaseRequest) error {
	if strings.TrimSpace(raw) == "" {
		return domainerr.NewValidationError(domainerr.ErrInvalidRequest, "purchase", "is required")
	}
	if err := json.Unmarshal([]byte(raw), req); err != nil {
		return domainerr.NewValidationError(domainerr.ErrInvalidRequest, "purchase", "is not valid JSON")
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return bindingError(err)
	}
	return nil
}

// proofFromForm opens the "proof" file of a multipart request
func proofFromForm(c *gin.Context, required bool) (*gateway.ProofFile, func(), error) {
	noop := func() {}

	header, err := c.FormFile("proof")
	if errors.Is(err, http.ErrMissingFile) && !required {
		return nil, noop, nil
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, noop, domainerr.NewValidationError(domainerr.ErrInvalidRequest, "proof", "is too large")
		}
		return nil, noop, domainerr.NewValidationError(domainerr.ErrInvalidRequest, "proof", "is required")
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, domainerr.NewValidationError(domainerr.ErrInvalidRequest, "proof", "cannot be read")
	}
	return newProofFile(header, file), func() { _ = file.Close() }, nil
}

func newProofFile(header *multipart.FileHeader, file multipart.File) *gateway.ProofFile {
	return &gateway.ProofFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}
}

// VerifyTransaction handles POST /api/admin/transactions/:txnId/verify
func (h *PurchaseHandler) VerifyTransaction(c *gin.Context) {
	txnID := c.Param("txnId")

	tickets, err := h.purchases.VerifyTransaction(c.Request.Context(), txnID, middleware.ActorID(c))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.VerifyTransactionResponse{
		TransactionID: txnID,
		Tickets:       dto.MapSlice(tickets, dto.NewTicketResponse),
	})
}

// CancelTransaction handles POST /api/admin/transactions/:txnId/cancel
func (h *PurchaseHandler) CancelTransaction(c *gin.Context) {
	var req dto.CancelTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	result, err := h.purchases.CancelTransaction(c.Request.Context(), c.Param("txnId"), req.Reason, middleware.ActorID(c))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// VerifyTicket handles POST /api/admin/tickets/:id/verify
func (h *PurchaseHandler) VerifyTicket(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	ticket, err := h.purchases.VerifyTicket(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTicketResponse(ticket))
}

// ReplaceProof handles PUT /api/admin/tickets/:id/proof
func (h *PurchaseHandler) ReplaceProof(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxProofBytes+multipartOverhead)
	proof, closeFile, err := proofFromForm(c, true)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	defer closeFile()

	ticket, err := h.purchases.ReplaceProof(c.Request.Context(), id, *proof)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTicketResponse(ticket))
}

// OccupiedNumbers handles GET /api/raffles/:id/numbers/occupied
func (h *PurchaseHandler) OccupiedNumbers(c *gin.Context) {
	h.numbers(c, h.tickets.OccupiedNumbers)
}

// AvailableNumbers handles GET /api/raffles/:id/numbers/available
func (h *PurchaseHandler) AvailableNumbers(c *gin.Context) {
	h.numbers(c, h.tickets.AvailableNumbers)
}

func (h *PurchaseHandler) numbers(c *gin.Context, query func(ctx context.Context, raffleID uint64) ([]int, error)) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	numbers, err := query(c.Request.Context(), raffleID)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NumbersResponse{RaffleID: raffleID, Numbers: numbers, Count: len(numbers)})
}

// NumberAvailable handles GET /api/raffles/:id/numbers/:number/available
func (h *PurchaseHandler) NumberAvailable(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	number, err := uintParam(c, "number")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	available, err := h.tickets.IsNumberAvailable(c.Request.Context(), raffleID, int(number))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NumberAvailabilityResponse{RaffleID: raffleID, Number: int(number), Available: available})
}

// PurchasesByEmail handles GET /api/purchases?email=
func (h *PurchaseHandler) PurchasesByEmail(c *gin.Context) {
	purchases, err := h.tickets.PurchasesByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapSlice(purchases, dto.NewPurchaseSummaryResponse))
}

// ListTickets handles GET /api/admin/raffles/:id/tickets
func (h *PurchaseHandler) ListTickets(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	var query dto.TicketListQuery
	if err := bindQuery(c, &query); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	page, err := h.tickets.ListTickets(c.Request.Context(), raffleID, query.Filter(), query.Pagination())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewTicketResponse))
}

// ListUnverified handles GET /api/admin/raffles/:id/tickets/unverified
func (h *PurchaseHandler) ListUnverified(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	var query dto.PageQuery
	if err := bindQuery(c, &query); err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	page, err := h.tickets.ListUnverified(c.Request.Context(), raffleID, query.Pagination())
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(page, dto.NewTicketResponse))
}

// PurchasesByRaffle handles GET /api/admin/raffles/:id/purchases
func (h *PurchaseHandler) PurchasesByRaffle(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	purchases, err := h.tickets.PurchasesByRaffle(c.Request.Context(), raffleID)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapSlice(purchases, dto.NewPurchaseSummaryResponse))
}

// CancelledPurchases handles GET /api/admin/raffles/:id/purchases/cancelled
func (h *PurchaseHandler) CancelledPurchases(c *gin.Context) {
	raffleID, err := uintParam(c, "id")
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}

	cancelled, err := h.tickets.CancelledPurchases(c.Request.Context(), raffleID)
	if err != nil {
		middleware.RespondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapSlice(cancelled, dto.NewCancelledPurchaseResponse))
}
