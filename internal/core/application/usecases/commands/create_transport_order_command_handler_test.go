package commands_test

import (
	"errors"
	"testing"

	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateCommand(t *testing.T) commands.CreateTransportOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateTransportOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"12 Harbor Rd", "Sorting Center 3",
		transportorder.Contacts{RecyclerName: "Wang", RecyclerPhone: "555-0101"},
		120.5, decimal.NewFromFloat(240.00))
	require.NoError(t, err)
	return cmd
}

func TestCreateTransportOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t)

	repo := new(MockTransportOrderRepository)
	seq := new(MockNumberSequence)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NumberSequence").Return(seq).Once(),
		seq.On("Next", mock.Anything, ports.TransportOrderNumberPrefix, mock.Anything).
			Return("TO202501010001", nil).Once(),
		uow.On("TransportOrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*transportorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Publish", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Event == "transport_order.created" && n.OrderNumber == "TO202501010001"
	})).Once()

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTransportOrderCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	seq.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateTransportOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateTransportOrderCommand{} // not constructed properly

	factory := new(MockCreateOrderUoWFactory)
	notifier := new(MockNotifier)
	h := commands.NewCreateTransportOrderCommandHandler(factory, notifier)
	require.Error(t, h.Handle(ctx, cmd))
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateTransportOrderCommandHandler_Handle_NumberAllocationError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t)

	seq := new(MockNumberSequence)
	uow := new(MockUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NumberSequence").Return(seq).Once(),
		seq.On("Next", mock.Anything, ports.TransportOrderNumberPrefix, mock.Anything).
			Return("", errors.New("sequence exhausted")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateTransportOrderCommandHandler(factory, notifier)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateTransportOrderCommand_Validation(t *testing.T) {
	_, err := commands.NewCreateTransportOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "Sorting Center 3",
		transportorder.Contacts{}, 10, decimal.Zero)
	require.ErrorIs(t, err, commands.ErrPickupAddressIsRequired)

	_, err = commands.NewCreateTransportOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12 Harbor Rd", "Sorting Center 3",
		transportorder.Contacts{}, 0, decimal.Zero)
	require.ErrorIs(t, err, commands.ErrEstimatedWeightIsInvalid)

	_, err = commands.NewCreateTransportOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12 Harbor Rd", "Sorting Center 3",
		transportorder.Contacts{}, 10, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, commands.ErrTotalPriceIsNegative)
}
