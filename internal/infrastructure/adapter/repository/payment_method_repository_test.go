package repository_test

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodRepository(t *testing.T) {
	ctx := context.Background()
	tdb := database.NewTestDB(t)
	repo := repository.NewPaymentMethodRepository(tdb.DB, tdb.Logger)

	t.Run("Seeded methods start inactive", func(t *testing.T) {
		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, "transferencia", all[0].Code)

		active, err := repo.ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("Activate and read back", func(t *testing.T) {
		zelle, err := repo.GetByCode(ctx, "zelle")
		require.NoError(t, err)

		zelle.Active = true
		zelle.RequiresProof = false
		zelle.Data = map[string]any{"email": "pay@example.com"}
		require.NoError(t, repo.Update(ctx, zelle))

		active, err := repo.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.False(t, active[0].RequiresProof)
		assert.Equal(t, "pay@example.com", active[0].Data["email"])
	})

	t.Run("Create stores false flags", func(t *testing.T) {
		cash := &entity.PaymentMethod{Code: "cash", Name: "Cash", Active: true, RequiresProof: false, Order: 9}
		require.NoError(t, repo.Create(ctx, cash))

		got, err := repo.GetByCode(ctx, "cash")
		require.NoError(t, err)
		assert.False(t, got.RequiresProof)
		assert.True(t, got.Active)
		assert.NotNil(t, got.Data)
	})

	t.Run("Duplicate code", func(t *testing.T) {
		err := repo.Create(ctx, &entity.PaymentMethod{Code: "cash", Name: "Cash again"})
		assert.ErrorIs(t, err, errs.ErrDuplicatePaymentMethod)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "cash"))
		_, err := repo.GetByCode(ctx, "cash")
		assert.ErrorIs(t, err, errs.ErrPaymentMethodNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "cash"), errs.ErrPaymentMethodNotFound)
	})
}
