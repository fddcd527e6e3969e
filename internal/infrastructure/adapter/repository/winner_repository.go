package repository

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// WinnerRepository implements WinnerRepository interface using GORM
type WinnerRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewWinnerRepository creates a new WinnerRepository instance
func NewWinnerRepository(db *gorm.DB, logger coreport.Logger) *WinnerRepository {
	return &WinnerRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

func winnerToModel(w *entity.Winner) model.Winner {
	return model.Winner{
		ID:               w.ID,
		RaffleID:         w.RaffleID,
		TicketID:         w.TicketID,
		TicketNumber:     w.TicketNumber,
		TicketCode:       w.TicketCode,
		BuyerName:        w.Buyer.Name,
		BuyerEmail:       w.Buyer.Email,
		BuyerPhone:       w.Buyer.Phone,
		BuyerCity:        w.Buyer.City,
		BuyerNationalID:  w.Buyer.NationalID,
		PrizeID:          w.PrizeID,
		PrizeName:        w.PrizeName,
		PrizeDescription: w.PrizeDescription,
		PrizeValue:       w.PrizeValue,
		PrizeCurrency:    w.PrizeCurrency,
		PrizePosition:    w.PrizePosition,
		IsPrimary:        w.IsPrimary,
		SelectedBy:       w.SelectedBy,
		DrawnAt:          w.DrawnAt,
		Delivered:        w.Delivered,
		DeliveredAt:      w.DeliveredAt,
		DeliveryNotes:    w.DeliveryNotes,
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func winnerFromModel(m *model.Winner) *entity.Winner {
	return &entity.Winner{
		ID:           m.ID,
		RaffleID:     m.RaffleID,
		TicketID:     m.TicketID,
		TicketNumber: m.TicketNumber,
		TicketCode:   m.TicketCode,
		Buyer: entity.Buyer{
			Name:       m.BuyerName,
			Email:      m.BuyerEmail,
			Phone:      m.BuyerPhone,
			City:       m.BuyerCity,
			NationalID: m.BuyerNationalID,
		},
		PrizeID:          m.PrizeID,
		PrizeName:        m.PrizeName,
		PrizeDescription: m.PrizeDescription,
		PrizeValue:       m.PrizeValue,
		PrizeCurrency:    m.PrizeCurrency,
		PrizePosition:    m.PrizePosition,
		IsPrimary:        m.IsPrimary,
		SelectedBy:       m.SelectedBy,
		DrawnAt:          m.DrawnAt,
		Delivered:        m.Delivered,
		DeliveredAt:      m.DeliveredAt,
		DeliveryNotes:    m.DeliveryNotes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func winnersFromModels(rows []model.Winner) []*entity.Winner {
	winners := make([]*entity.Winner, len(rows))
	for i := range rows {
		winners[i] = winnerFromModel(&rows[i])
	}
	return winners
}

// handleDatabaseError standardizes database error handling
func (r *WinnerRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	return mapDatabaseError(r.logger, r.errorMapper, EntityTypeWinner, operation, err, fields)
}

// CreateBatch inserts all winners of one draw in a single statement
func (r *WinnerRepository) CreateBatch(ctx context.Context, winners []*entity.Winner) error {
	if len(winners) == 0 {
		return nil
	}

	rows := make([]model.Winner, len(winners))
	for i, w := range winners {
		rows[i] = winnerToModel(w)
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return r.handleDatabaseError("creating winners", err, map[string]any{
			"raffle_id": winners[0].RaffleID,
			"count":     len(winners),
		})
	}

	for i := range rows {
		winners[i].ID = rows[i].ID
	}
	return nil
}

// ExistsForRaffle reports whether a draw already produced winners for the raffle
func (r *WinnerRepository) ExistsForRaffle(ctx context.Context, raffleID uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Winner{}).Where("raffle_id = ?", raffleID).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking winners", err, map[string]any{"raffle_id": raffleID})
	}
	return count > 0, nil
}

// ListByRaffle returns the winners of a raffle ordered by prize position
func (r *WinnerRepository) ListByRaffle(ctx context.Context, raffleID uint64) ([]*entity.Winner, error) {
	var rows []model.Winner
	err := r.db.WithContext(ctx).
		Where("raffle_id = ?", raffleID).
		Order("prize_position asc").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing winners", err, map[string]any{"raffle_id": raffleID})
	}
	return winnersFromModels(rows), nil
}

// List returns a page of winners across raffles, latest draw first
func (r *WinnerRepository) List(ctx context.Context, page entity.Pagination) (entity.Page[*entity.Winner], error) {
	page = page.Normalize()
	result := entity.Page[*entity.Winner]{Page: page.Page, PageSize: page.PageSize}

	q := r.db.WithContext(ctx).Model(&model.Winner{})
	if err := q.Count(&result.Total).Error; err != nil {
		return result, r.handleDatabaseError("counting winners", err, nil)
	}

	var rows []model.Winner
	if err := paginate(q.Order("drawn_at desc").Order("prize_position asc"), page).Find(&rows).Error; err != nil {
		return result, r.handleDatabaseError("listing winners", err, nil)
	}

	result.Items = winnersFromModels(rows)
	return result, nil
}

// GetByID retrieves a winner by ID
func (r *WinnerRepository) GetByID(ctx context.Context, id uint64) (*entity.Winner, error) {
	var m model.Winner
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting winner", err, map[string]any{"winner_id": id})
	}
	return winnerFromModel(&m), nil
}

// Update writes the delivery fields of a winner
func (r *WinnerRepository) Update(ctx context.Context, winner *entity.Winner) error {
	result := r.db.WithContext(ctx).Model(&model.Winner{}).
		Where("id = ?", winner.ID).
		Updates(map[string]any{
			"delivered":      winner.Delivered,
			"delivered_at":   winner.DeliveredAt,
			"delivery_notes": winner.DeliveryNotes,
			"updated_at":     winner.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating winner", result.Error, map[string]any{"winner_id": winner.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrWinnerNotFound
	}
	return nil
}
