package repository

import (
	"context"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/raffle-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentMethodRepository implements PaymentMethodRepository interface using GORM
type PaymentMethodRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewPaymentMethodRepository creates a new PaymentMethodRepository instance
func NewPaymentMethodRepository(db *gorm.DB, logger coreport.Logger) *PaymentMethodRepository {
	return &PaymentMethodRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

func paymentMethodToModel(pm *entity.PaymentMethod) model.PaymentMethod {
	data := datatypes.JSONMap(pm.Data)
	if data == nil {
		data = datatypes.JSONMap{}
	}
	return model.PaymentMethod{
		ID:                pm.ID,
		Code:              pm.Code,
		Name:              pm.Name,
		Active:            pm.Active,
		Data:              data,
		RequiresProof:     pm.RequiresProof,
		RequiresReference: pm.RequiresReference,
		SortOrder:         pm.Order,
		CreatedAt:         pm.CreatedAt,
		UpdatedAt:         pm.UpdatedAt,
	}
}

func paymentMethodFromModel(m *model.PaymentMethod) entity.PaymentMethod {
	data := map[string]any(m.Data)
	if data == nil {
		data = map[string]any{}
	}
	return entity.PaymentMethod{
		ID:                m.ID,
		Code:              m.Code,
		Name:              m.Name,
		Active:            m.Active,
		Data:              data,
		RequiresProof:     m.RequiresProof,
		RequiresReference: m.RequiresReference,
		Order:             m.SortOrder,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *PaymentMethodRepository) handleDatabaseError(operation string, err error, code string) error {
	return mapDatabaseError(r.logger, r.errorMapper, EntityTypePaymentMethod, operation, err, map[string]any{
		"code": code,
	})
}

func (r *PaymentMethodRepository) list(ctx context.Context, activeOnly bool) ([]entity.PaymentMethod, error) {
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var rows []model.PaymentMethod
	if err := q.Order("sort_order asc").Order("id asc").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing payment methods", err, "")
	}

	methods := make([]entity.PaymentMethod, len(rows))
	for i := range rows {
		methods[i] = paymentMethodFromModel(&rows[i])
	}
	return methods, nil
}

// ListActive returns active methods ordered by their display order
func (r *PaymentMethodRepository) ListActive(ctx context.Context) ([]entity.PaymentMethod, error) {
	return r.list(ctx, true)
}

// List returns every method ordered by display order
func (r *PaymentMethodRepository) List(ctx context.Context) ([]entity.PaymentMethod, error) {
	return r.list(ctx, false)
}

// GetByCode returns the method with the given code
func (r *PaymentMethodRepository) GetByCode(ctx context.Context, code string) (*entity.PaymentMethod, error) {
	var m model.PaymentMethod
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting payment method", err, code)
	}
	pm := paymentMethodFromModel(&m)
	return &pm, nil
}

// Create stores a new method and sets its ID
func (r *PaymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	m := paymentMethodToModel(method)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating payment method", err, method.Code)
	}

	method.ID = m.ID
	r.logger.Info("Payment method created", map[string]any{
		"code":   method.Code,
		"active": method.Active,
	})
	return nil
}

// Update writes every mutable field of the method identified by its code
func (r *PaymentMethodRepository) Update(ctx context.Context, method *entity.PaymentMethod) error {
	m := paymentMethodToModel(method)
	result := r.db.WithContext(ctx).Model(&model.PaymentMethod{}).
		Where("code = ?", method.Code).
		Updates(map[string]any{
			"name":               m.Name,
			"active":             m.Active,
			"data":               m.Data,
			"requires_proof":     m.RequiresProof,
			"requires_reference": m.RequiresReference,
			"sort_order":         m.SortOrder,
			"updated_at":         m.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating payment method", result.Error, method.Code)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentMethodNotFound
	}

	r.logger.Info("Payment method updated", map[string]any{
		"code":   method.Code,
		"active": method.Active,
	})
	return nil
}

// Delete removes the method with the given code
func (r *PaymentMethodRepository) Delete(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Where("code = ?", code).Delete(&model.PaymentMethod{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting payment method", result.Error, code)
	}
	if result.RowsAffected == 0 {
		return errs.ErrPaymentMethodNotFound
	}

	r.logger.Info("Payment method deleted", map[string]any{"code": code})
	return nil
}
