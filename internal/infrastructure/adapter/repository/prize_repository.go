package repository

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PrizeRepository implements PrizeRepository interface using GORM
type PrizeRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewPrizeRepository creates a new PrizeRepository instance
func NewPrizeRepository(db *gorm.DB, logger coreport.Logger) *PrizeRepository {
	return &PrizeRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

func prizeToModel(p *entity.Prize) model.Prize {
	return model.Prize{
		ID:              p.ID,
		RaffleID:        p.RaffleID,
		Name:            p.Name,
		Description:     p.Description,
		Position:        p.Position,
		Value:           p.Value,
		Currency:        p.Currency,
		WinningTicketID: p.WinningTicketID,
		State:           string(p.State),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func prizeFromModel(m *model.Prize) *entity.Prize {
	return &entity.Prize{
		ID:              m.ID,
		RaffleID:        m.RaffleID,
		Name:            m.Name,
		Description:     m.Description,
		Position:        m.Position,
		Value:           m.Value,
		Currency:        m.Currency,
		WinningTicketID: m.WinningTicketID,
		State:           entity.PrizeState(m.State),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *PrizeRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	return mapDatabaseError(r.logger, r.errorMapper, EntityTypePrize, operation, err, fields)
}

// Create stores a prize and sets its ID
func (r *PrizeRepository) Create(ctx context.Context, prize *entity.Prize) error {
	m := prizeToModel(prize)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating prize", err, map[string]any{
			"raffle_id": prize.RaffleID,
			"position":  prize.Position,
		})
	}

	prize.ID = m.ID
	return nil
}

// GetByID retrieves a prize by ID
func (r *PrizeRepository) GetByID(ctx context.Context, id uint64) (*entity.Prize, error) {
	var m model.Prize
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting prize", err, map[string]any{"prize_id": id})
	}
	return prizeFromModel(&m), nil
}

// GetByPosition returns the prize of a raffle at position
func (r *PrizeRepository) GetByPosition(ctx context.Context, raffleID uint64, position int) (*entity.Prize, error) {
	var m model.Prize
	err := r.db.WithContext(ctx).
		Where("raffle_id = ? AND position = ?", raffleID, position).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting prize by position", err, map[string]any{
			"raffle_id": raffleID,
			"position":  position,
		})
	}
	return prizeFromModel(&m), nil
}

// ListByRaffle returns the prizes of a raffle ordered by position
func (r *PrizeRepository) ListByRaffle(ctx context.Context, raffleID uint64, includeInactive bool) ([]*entity.Prize, error) {
	q := r.db.WithContext(ctx).Where("raffle_id = ?", raffleID)
	if !includeInactive {
		q = q.Where("state <> ?", string(entity.PrizeInactive))
	}

	var rows []model.Prize
	if err := q.Order("position asc").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing prizes", err, map[string]any{"raffle_id": raffleID})
	}

	prizes := make([]*entity.Prize, len(rows))
	for i := range rows {
		prizes[i] = prizeFromModel(&rows[i])
	}
	return prizes, nil
}

// Update writes every mutable prize field
func (r *PrizeRepository) Update(ctx context.Context, prize *entity.Prize) error {
	result := r.db.WithContext(ctx).Model(&model.Prize{}).
		Where("id = ?", prize.ID).
		Updates(map[string]any{
			"name":              prize.Name,
			"description":       prize.Description,
			"position":          prize.Position,
			"value":             prize.Value,
			"currency":          prize.Currency,
			"winning_ticket_id": prize.WinningTicketID,
			"state":             string(prize.State),
			"updated_at":        prize.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating prize", result.Error, map[string]any{"prize_id": prize.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrPrizeNotFound
	}
	return nil
}

// Delete removes a prize
func (r *PrizeRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Prize{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting prize", result.Error, map[string]any{"prize_id": id})
	}
	if result.RowsAffected == 0 {
		return errs.ErrPrizeNotFound
	}

	r.logger.Info("Prize deleted", map[string]any{"prize_id": id})
	return nil
}

// UsedPositions returns the positions already taken in a raffle
func (r *PrizeRepository) UsedPositions(ctx context.Context, raffleID uint64) ([]int, error) {
	positions := []int{}
	err := r.db.WithContext(ctx).Model(&model.Prize{}).
		Where("raffle_id = ?", raffleID).
		Order("position asc").
		Pluck("position", &positions).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing prize positions", err, map[string]any{"raffle_id": raffleID})
	}
	return positions, nil
}
