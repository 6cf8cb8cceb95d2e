package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCompleteLoadingCommandHandler_Handle_MovesInventoryWithTransition(t *testing.T) {
	ctx := t.Context()
	order := newTestOrder(t, transportorder.StageArrivedAtPickup)
	cmd, err := commands.NewCompleteLoadingCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockTransportOrderRepository)
	invRepo := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		orderRepo.On("Update", mock.Anything, order, transportorder.StageArrivedAtPickup).Return(nil).Once(),
		uow.On("InventoryRepository").Return(invRepo).Once(),
		invRepo.On("MoveAllToInTransit", mock.Anything, order.RecyclerID()).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteLoadingCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, transportorder.StageLoadingCompleted, order.Stage())
	orderRepo.AssertExpectations(t)
	invRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// An empty storage point is not an error; the transition still commits.
func TestCompleteLoadingCommandHandler_Handle_ZeroRowsMovedStillCommits(t *testing.T) {
	ctx := t.Context()
	order := newTestOrder(t, transportorder.StageArrivedAtPickup)
	cmd, err := commands.NewCompleteLoadingCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockTransportOrderRepository)
	invRepo := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		orderRepo.On("Update", mock.Anything, order, transportorder.StageArrivedAtPickup).Return(nil).Once(),
		uow.On("InventoryRepository").Return(invRepo).Once(),
		invRepo.On("MoveAllToInTransit", mock.Anything, order.RecyclerID()).Return(int64(0), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteLoadingCommandHandler(factory, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

// A stage conflict on the order stops the handler before any inventory write.
func TestCompleteLoadingCommandHandler_Handle_ConflictSkipsInventory(t *testing.T) {
	ctx := t.Context()
	order := newTestOrder(t, transportorder.StageArrivedAtPickup)
	cmd, err := commands.NewCompleteLoadingCommand(order.ID())
	require.NoError(t, err)

	conflict := errs.NewStateConflictError("Update", "stage changed concurrently")

	orderRepo := new(MockTransportOrderRepository)
	invRepo := new(MockInventoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		orderRepo.On("Update", mock.Anything, order, transportorder.StageArrivedAtPickup).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoadingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteLoadingCommandHandler(factory, discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStateConflict)
	invRepo.AssertNotCalled(t, "MoveAllToInTransit", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
