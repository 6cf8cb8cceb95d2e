package commands_test

import (
	"testing"

	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordCategoryDetailsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := newTestOrder(t, transportorder.StagePending) // declares 50 kg
	cmd, err := commands.NewRecordCategoryDetailsCommand(order.ID(), []commands.CategoryDetailItem{
		{Key: "paper", Name: "Paper", WeightKg: 30, PricePerKg: decimal.NewFromFloat(2.00)},
		{Key: "plastic", Name: "Plastic", WeightKg: 20, PricePerKg: decimal.NewFromFloat(1.50)},
	})
	require.NoError(t, err)

	orderRepo := new(MockTransportOrderRepository)
	detailRepo := new(MockCategoryDetailRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("CategoryDetailRepository").Return(detailRepo).Once(),
		detailRepo.On("AddAll", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("TransportOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateItemCategories", mock.Anything, order.ID(), "Paper 30.00 kg, Plastic 20.00 kg").
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCategoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordCategoryDetailsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	detailRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// Weights that do not sum to the order's declared weight reject the whole
// write before anything is persisted.
func TestRecordCategoryDetailsCommandHandler_Handle_WeightMismatch(t *testing.T) {
	ctx := t.Context()
	order := newTestOrder(t, transportorder.StagePending) // declares 50 kg
	cmd, err := commands.NewRecordCategoryDetailsCommand(order.ID(), []commands.CategoryDetailItem{
		{Key: "paper", Name: "Paper", WeightKg: 30, PricePerKg: decimal.NewFromFloat(2.00)},
		{Key: "plastic", Name: "Plastic", WeightKg: 25, PricePerKg: decimal.NewFromFloat(1.50)},
	})
	require.NoError(t, err)

	orderRepo := new(MockTransportOrderRepository)
	detailRepo := new(MockCategoryDetailRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCategoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordCategoryDetailsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrIntegrityViolation)
	detailRepo.AssertNotCalled(t, "AddAll", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRecordCategoryDetailsCommand_Validation(t *testing.T) {
	order := newTestOrder(t, transportorder.StagePending)

	_, err := commands.NewRecordCategoryDetailsCommand(order.ID(), nil)
	require.ErrorIs(t, err, commands.ErrCategoryItemsAreRequired)

	_, err = commands.NewRecordCategoryDetailsCommand(order.ID(), []commands.CategoryDetailItem{
		{Key: "paper", WeightKg: 10, PricePerKg: decimal.NewFromInt(-1)},
	})
	require.ErrorIs(t, err, commands.ErrPricePerKgIsNegative)
}
