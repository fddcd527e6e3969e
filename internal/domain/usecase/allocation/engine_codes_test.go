package allocation_test

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/allocation"
	mockcore "github.com/amirhossein-jamali/raffle-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_TicketCodes(t *testing.T) {
	ctx := context.Background()

	t.Run("Generated code and purchase time are stored", func(t *testing.T) {
		f := newFixture(t)
		ids := mockcore.NewMockIDGenerator(t)
		clock := mockcore.NewMockTimeProvider(t)
		ids.EXPECT().TicketCode().Return("K7Q2", nil).Once()
		clock.EXPECT().Now().Return(testNow).Maybe()

		engine := allocation.NewEngine(f.tdb.UnitOfWork(), ids, clock, f.tdb.Logger)
		raffle := f.raffle(t, 10, entity.RaffleActive)

		tickets, err := engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-CODE", 5))
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, "K7Q2", tickets[0].Code)
		require.NotNil(t, tickets[0].PurchasedAt)
		assert.True(t, tickets[0].PurchasedAt.Equal(testNow))
	})

	t.Run("Exhausted codes fail the sale without selling", func(t *testing.T) {
		f := newFixture(t)
		ids := mockcore.NewMockIDGenerator(t)
		ids.EXPECT().TicketCode().Return("DUPL", nil)

		engine := allocation.NewEngine(f.tdb.UnitOfWork(), ids, f.tdb.TimeProvider, f.tdb.Logger)
		raffle := f.raffle(t, 10, entity.RaffleActive)

		_, err := engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-1", 1))
		require.NoError(t, err)

		_, err = engine.AllocateAndSell(ctx, request(raffle.ID, "TXN-2", 2))
		assert.ErrorIs(t, err, errs.ErrTicketCodeCollision)
		assert.Equal(t, 1, f.sold(t, raffle.ID))
	})
}
