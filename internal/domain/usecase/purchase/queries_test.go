package purchase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/raffle-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/raffle-service/internal/domain/usecase/purchase"
	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/adapter/logger"
	mockpersistence "github.com/amirhossein-jamali/raffle-service/mocks/port/persistence"
	mockusecase "github.com/amirhossein-jamali/raffle-service/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueryService_Isolated(t *testing.T) {
	ctx := context.Background()

	t.Run("Number availability is answered by the engine", func(t *testing.T) {
		engine := mockusecase.NewMockAllocationEngine(t)
		uow := mockpersistence.NewMockUnitOfWork(t)
		engine.EXPECT().CheckAvailable(mock.Anything, uint64(3), 17).Return(true, nil).Once()

		ok, err := purchase.NewQueryService(engine, uow, logger.NewNoopLogger()).IsNumberAvailable(ctx, 3, 17)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Engine errors pass through", func(t *testing.T) {
		engine := mockusecase.NewMockAllocationEngine(t)
		uow := mockpersistence.NewMockUnitOfWork(t)
		engine.EXPECT().CheckAvailable(mock.Anything, uint64(3), 99).Return(false, errs.ErrNumberOutOfRange).Once()

		_, err := purchase.NewQueryService(engine, uow, logger.NewNoopLogger()).IsNumberAvailable(ctx, 3, 99)
		assert.ErrorIs(t, err, errs.ErrNumberOutOfRange)
	})

	t.Run("Unknown raffle stops the occupied lookup", func(t *testing.T) {
		engine := mockusecase.NewMockAllocationEngine(t)
		uow := mockpersistence.NewMockUnitOfWork(t)
		raffles := mockpersistence.NewMockRaffleRepository(t)
		uow.EXPECT().GetRaffleRepository(mock.Anything).Return(raffles)
		raffles.EXPECT().GetByID(mock.Anything, uint64(8)).Return(nil, errs.ErrRaffleNotFound).Once()

		_, err := purchase.NewQueryService(engine, uow, logger.NewNoopLogger()).OccupiedNumbers(ctx, 8)
		assert.ErrorIs(t, err, errs.ErrRaffleNotFound)
	})

	t.Run("Storage failure on raffle lookup", func(t *testing.T) {
		engine := mockusecase.NewMockAllocationEngine(t)
		uow := mockpersistence.NewMockUnitOfWork(t)
		raffles := mockpersistence.NewMockRaffleRepository(t)
		boom := errors.New("connection reset")
		uow.EXPECT().GetRaffleRepository(mock.Anything).Return(raffles)
		raffles.EXPECT().GetByID(mock.Anything, uint64(8)).Return(nil, boom).Once()

		_, err := purchase.NewQueryService(engine, uow, logger.NewNoopLogger()).AvailableNumbers(ctx, 8)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Unknown ticket state is rejected before storage", func(t *testing.T) {
		engine := mockusecase.NewMockAllocationEngine(t)
		uow := mockpersistence.NewMockUnitOfWork(t)

		_, err := purchase.NewQueryService(engine, uow, logger.NewNoopLogger()).
			ListTickets(ctx, 1, usecase.TicketListFilter{State: "lost"}, entity.Pagination{Page: 1, PageSize: 20})
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Blank email is rejected before storage", func(t *testing.T) {
		engine := mockusecase.NewMockAllocationEngine(t)
		uow := mockpersistence.NewMockUnitOfWork(t)

		_, err := purchase.NewQueryService(engine, uow, logger.NewNoopLogger()).PurchasesByEmail(ctx, "   ")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
