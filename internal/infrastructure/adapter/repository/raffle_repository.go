package repository

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RaffleRepository implements RaffleRepository interface using GORM
type RaffleRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *ErrorMapper
}

// NewRaffleRepository creates a new RaffleRepository instance
func NewRaffleRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *RaffleRepository {
	return &RaffleRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
	}
}

func raffleToModel(r *entity.Raffle) model.Raffle {
	return model.Raffle{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		Price:             r.Price,
		SecondaryPrice:    r.SecondaryPrice,
		Currency:          r.Currency,
		SecondaryCurrency: r.SecondaryCurrency,
		TotalTickets:      r.TotalTickets,
		SoldTickets:       r.SoldTickets,
		State:             string(r.State),
		DrawDate:          r.DrawDate,
		ImageURL:          r.ImageURL,
		OwnerID:           r.OwnerID,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func raffleFromModel(m *model.Raffle) *entity.Raffle {
	return &entity.Raffle{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		Price:             m.Price,
		SecondaryPrice:    m.SecondaryPrice,
		Currency:          m.Currency,
		SecondaryCurrency: m.SecondaryCurrency,
		TotalTickets:      m.TotalTickets,
		SoldTickets:       m.SoldTickets,
		State:             entity.RaffleState(m.State),
		DrawDate:          m.DrawDate,
		ImageURL:          m.ImageURL,
		OwnerID:           m.OwnerID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *RaffleRepository) handleDatabaseError(operation string, err error, raffleID uint64) error {
	return mapDatabaseError(r.logger, r.errorMapper, EntityTypeRaffle, operation, err, map[string]any{
		"raffle_id": raffleID,
	})
}

// Create stores a new raffle and sets its ID
func (r *RaffleRepository) Create(ctx context.Context, raffle *entity.Raffle) error {
	m := raffleToModel(raffle)

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating raffle", err, 0)
	}

	raffle.ID = m.ID
	r.logger.Info("Raffle created", map[string]any{
		"raffle_id":     raffle.ID,
		"total_tickets": raffle.TotalTickets,
		"state":         raffle.State,
	})
	return nil
}

// GetByID retrieves a raffle by ID
func (r *RaffleRepository) GetByID(ctx context.Context, id uint64) (*entity.Raffle, error) {
	var m model.Raffle
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting raffle", err, id)
	}
	return raffleFromModel(&m), nil
}

// GetForUpdate retrieves a raffle holding a row lock. SQLite ignores the locking clause.
func (r *RaffleRepository) GetForUpdate(ctx context.Context, id uint64) (*entity.Raffle, error) {
	var m model.Raffle
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, id).Error
	if err != nil {
		return nil, r.handleDatabaseError("locking raffle", err, id)
	}
	return raffleFromModel(&m), nil
}

// List returns a page of raffles, newest first
func (r *RaffleRepository) List(ctx context.Context, filter persistence.RaffleFilter, page entity.Pagination) (entity.Page[*entity.Raffle], error) {
	page = page.Normalize()
	result := entity.Page[*entity.Raffle]{Page: page.Page, PageSize: page.PageSize}

	q := r.db.WithContext(ctx).Model(&model.Raffle{})
	if filter.State != "" {
		q = q.Where("state = ?", string(filter.State))
	}

	if err := q.Count(&result.Total).Error; err != nil {
		return result, r.handleDatabaseError("counting raffles", err, 0)
	}

	var rows []model.Raffle
	if err := paginate(q.Order("created_at desc").Order("id desc"), page).Find(&rows).Error; err != nil {
		return result, r.handleDatabaseError("listing raffles", err, 0)
	}

	result.Items = make([]*entity.Raffle, len(rows))
	for i := range rows {
		result.Items[i] = raffleFromModel(&rows[i])
	}
	return result, nil
}

// LatestActive returns the most recently created raffle in state active
func (r *RaffleRepository) LatestActive(ctx context.Context) (*entity.Raffle, error) {
	var m model.Raffle
	err := r.db.WithContext(ctx).
		Where("state = ?", string(entity.RaffleActive)).
		Order("created_at desc").Order("id desc").
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("finding latest active raffle", err, 0)
	}
	return raffleFromModel(&m), nil
}

// Update writes the descriptive fields and the state. sold_tickets is left alone.
func (r *RaffleRepository) Update(ctx context.Context, raffle *entity.Raffle) error {
	result := r.db.WithContext(ctx).Model(&model.Raffle{}).
		Where("id = ?", raffle.ID).
		Updates(map[string]any{
			"title":              raffle.Title,
			"description":        raffle.Description,
			"price":              raffle.Price,
			"secondary_price":    raffle.SecondaryPrice,
			"currency":           raffle.Currency,
			"secondary_currency": raffle.SecondaryCurrency,
			"state":              string(raffle.State),
			"draw_date":          raffle.DrawDate,
			"image_url":          raffle.ImageURL,
			"updated_at":         raffle.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating raffle", result.Error, raffle.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrRaffleNotFound
	}

	r.logger.Info("Raffle updated", map[string]any{
		"raffle_id": raffle.ID,
		"state":     raffle.State,
	})
	return nil
}

// IncrementSold adds count to the sold counter in a single guarded statement
func (r *RaffleRepository) IncrementSold(ctx context.Context, id uint64, count int) error {
	result := r.db.WithContext(ctx).Model(&model.Raffle{}).
		Where("id = ? AND sold_tickets + ? <= total_tickets", id, count).
		Updates(map[string]any{
			"sold_tickets": gorm.Expr("sold_tickets + ?", count),
			"updated_at":   r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("incrementing sold tickets", result.Error, id)
	}

	if result.RowsAffected == 0 {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		r.logger.Warn("Sold counter increment refused", map[string]any{
			"raffle_id": id,
			"requested": count,
			"available": current.Available(),
		})
		return errs.NewInsufficientTicketsAvailableError(id, count, current.Available())
	}

	r.logger.Debug("Sold counter incremented", map[string]any{
		"raffle_id": id,
		"count":     count,
	})
	return nil
}

// DecrementSold subtracts count from the sold counter, never going below zero
func (r *RaffleRepository) DecrementSold(ctx context.Context, id uint64, count int) error {
	result := r.db.WithContext(ctx).Model(&model.Raffle{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sold_tickets": gorm.Expr("CASE WHEN sold_tickets < ? THEN 0 ELSE sold_tickets - ? END", count, count),
			"updated_at":   r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("decrementing sold tickets", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrRaffleNotFound
	}

	r.logger.Debug("Sold counter decremented", map[string]any{
		"raffle_id": id,
		"count":     count,
	})
	return nil
}

// Stats counts raffles per state and the tickets sold across all of them
func (r *RaffleRepository) Stats(ctx context.Context) (entity.RaffleStats, error) {
	var rows []struct {
		State string
		Count int64
		Sold  int64
	}

	err := r.db.WithContext(ctx).Model(&model.Raffle{}).
		Select("state, COUNT(*) AS count, COALESCE(SUM(sold_tickets), 0) AS sold").
		Group("state").
		Scan(&rows).Error
	if err != nil {
		return entity.RaffleStats{}, r.handleDatabaseError("computing raffle stats", err, 0)
	}

	var stats entity.RaffleStats
	for _, row := range rows {
		stats.Total += row.Count
		stats.TicketsSold += row.Sold
		switch entity.RaffleState(row.State) {
		case entity.RaffleActive:
			stats.Active = row.Count
		case entity.RafflePaused:
			stats.Paused = row.Count
		case entity.RaffleFinished:
			stats.Finished = row.Count
		case entity.RaffleCancelled:
			stats.Cancelled = row.Count
		}
	}
	return stats, nil
}
