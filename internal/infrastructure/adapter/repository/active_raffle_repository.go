package repository

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActiveRaffleRepository keeps the active-raffle pointer in a single row keyed by a constant
type ActiveRaffleRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewActiveRaffleRepository creates a new ActiveRaffleRepository instance
func NewActiveRaffleRepository(db *gorm.DB, logger coreport.Logger) *ActiveRaffleRepository {
	return &ActiveRaffleRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// Get returns the pointer with its raffle loaded
func (r *ActiveRaffleRepository) Get(ctx context.Context) (*entity.ActiveRaffle, error) {
	var m model.ActiveRaffle
	err := r.db.WithContext(ctx).
		Preload("Raffle").
		Where("singleton_key = ?", model.ActiveRaffleSingletonKey).
		First(&m).Error
	if err != nil {
		return nil, mapDatabaseError(r.logger, r.errorMapper, EntityTypeActiveRaffle, "getting active raffle", err, nil)
	}

	// The pointer can outlive its raffle row where foreign keys are not enforced
	if m.Raffle.ID == 0 {
		r.logger.Warn("Active raffle points at a missing raffle", map[string]any{
			"raffle_id": m.RaffleID,
		})
		return nil, errs.ErrNotFound
	}

	return &entity.ActiveRaffle{
		RaffleID:    m.RaffleID,
		ActivatedBy: m.ActivatedBy,
		ActivatedAt: m.ActivatedAt,
		Raffle:      raffleFromModel(&m.Raffle),
	}, nil
}

// Replace upserts the singleton row, so concurrent callers always leave exactly one pointer
func (r *ActiveRaffleRepository) Replace(ctx context.Context, active *entity.ActiveRaffle) error {
	m := model.ActiveRaffle{
		SingletonKey: model.ActiveRaffleSingletonKey,
		RaffleID:     active.RaffleID,
		ActivatedBy:  active.ActivatedBy,
		ActivatedAt:  active.ActivatedAt,
	}

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "singleton_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"raffle_id", "activated_by", "activated_at"}),
		}).
		Create(&m).Error
	if err != nil {
		return mapDatabaseError(r.logger, r.errorMapper, EntityTypeActiveRaffle, "replacing active raffle", err, map[string]any{
			"raffle_id": active.RaffleID,
		})
	}

	r.logger.Info("Active raffle replaced", map[string]any{
		"raffle_id":    active.RaffleID,
		"activated_by": active.ActivatedBy,
	})
	return nil
}

// Clear removes the pointer
func (r *ActiveRaffleRepository) Clear(ctx context.Context) error {
	result := r.db.WithContext(ctx).
		Where("singleton_key = ?", model.ActiveRaffleSingletonKey).
		Delete(&model.ActiveRaffle{})
	if result.Error != nil {
		return mapDatabaseError(r.logger, r.errorMapper, EntityTypeActiveRaffle, "clearing active raffle", result.Error, nil)
	}

	r.logger.Info("Active raffle cleared", map[string]any{
		"removed": result.RowsAffected,
	})
	return nil
}
