package paymentmethod_test

import (
	"context"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/paymentmethod"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// newService starts from an empty catalog, without the seeded defaults
func newService(t *testing.T) *paymentmethod.Service {
	t.Helper()
	tdb := database.NewTestDB(t)
	tdb.Truncate(t, "payment_methods")
	return serviceOn(tdb)
}

func serviceOn(tdb *database.TestDB) *paymentmethod.Service {
	repo := repository.NewPaymentMethodRepository(tdb.DB, tdb.Logger)
	reg := paymentmethod.NewRegistry(repo, tdb.TimeProvider, tdb.Logger, time.Hour)
	return paymentmethod.NewService(repo, reg, tdb.TimeProvider, tdb.Logger)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.Create(ctx, usecase.PaymentMethodInput{
		Code: " Zelle ",
		Name: "Zelle",
		Data: map[string]any{"email": "pay@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "zelle", created.Code)
	assert.True(t, created.Active)
	assert.True(t, created.RequiresProof)
	assert.False(t, created.RequiresReference)

	_, err = svc.Create(ctx, usecase.PaymentMethodInput{Code: "zelle", Name: "Again"})
	assert.ErrorIs(t, err, errs.ErrDuplicatePaymentMethod)

	tests := []struct {
		name  string
		input usecase.PaymentMethodInput
		field string
	}{
		{"Missing name", usecase.PaymentMethodInput{Code: "cash"}, "name"},
		{"Bad code", usecase.PaymentMethodInput{Code: "pago movil!", Name: "Pago"}, "code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestService_MutationsReachTheActiveList(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Create(ctx, usecase.PaymentMethodInput{Code: "zelle", Name: "Zelle", Order: ptr(2)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, usecase.PaymentMethodInput{Code: "cash", Name: "Cash", RequiresProof: ptr(false), Order: ptr(1)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, usecase.PaymentMethodInput{Code: "binance", Name: "Binance", Active: ptr(false)})
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "cash", active[0].Code)
	assert.Equal(t, "zelle", active[1].Code)

	toggled, err := svc.Toggle(ctx, "binance")
	require.NoError(t, err)
	assert.True(t, toggled.Active)

	updated, err := svc.Update(ctx, "zelle", usecase.PaymentMethodInput{Name: "Zelle USA", RequiresReference: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, "Zelle USA", updated.Name)
	assert.True(t, updated.RequiresProof)
	assert.True(t, updated.RequiresReference)

	require.NoError(t, svc.Delete(ctx, "CASH"))

	active, err = svc.ListActive(ctx)
	require.NoError(t, err)
	codes := make([]string, len(active))
	for i, m := range active {
		codes[i] = m.Code
	}
	assert.ElementsMatch(t, []string{"zelle", "binance"}, codes)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.ErrorIs(t, svc.Delete(ctx, "cash"), errs.ErrPaymentMethodNotFound)
	_, err = svc.Toggle(ctx, "nope")
	assert.ErrorIs(t, err, errs.ErrPaymentMethodNotFound)
}

func TestService_SeededDefaults(t *testing.T) {
	ctx := context.Background()
	svc := serviceOn(database.NewTestDB(t))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	codes := make([]string, len(all))
	for i, m := range all {
		codes[i] = m.Code
		assert.False(t, m.Active, m.Code)
	}
	assert.Subset(t, codes, []string{"transferencia", "pago_movil", "zelle", "binance"})

	_, err = svc.Create(ctx, usecase.PaymentMethodInput{Code: "zelle", Name: "Zelle"})
	assert.ErrorIs(t, err, errs.ErrDuplicatePaymentMethod)
}
