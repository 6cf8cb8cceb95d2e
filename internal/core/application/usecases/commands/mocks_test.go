package commands_test

import (
	"context"
	"testing"
	"time"

	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/receipt"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransportOrderRepository struct{ mock.Mock }

func (m *MockTransportOrderRepository) Add(ctx context.Context, o *transportorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTransportOrderRepository) Update(
	ctx context.Context, o *transportorder.Order, expected transportorder.Stage,
) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockTransportOrderRepository) Get(ctx context.Context, id kernel.UUID) (*transportorder.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transportorder.Order), args.Error(1)
}

func (m *MockTransportOrderRepository) UpdateItemCategories(ctx context.Context, id kernel.UUID, summary string) error {
	args := m.Called(ctx, id, summary)
	return args.Error(0)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) AddAll(ctx context.Context, records []*inventory.Record) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockInventoryRepository) MoveAllToInTransit(ctx context.Context, recyclerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, recyclerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) RetireForReceipt(ctx context.Context, recyclerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, recyclerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockReceiptRepository struct{ mock.Mock }

func (m *MockReceiptRepository) Add(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) Update(ctx context.Context, r *receipt.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepository) Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) GetByTransportOrder(
	ctx context.Context, transportOrderID kernel.UUID,
) (*receipt.Receipt, error) {
	args := m.Called(ctx, transportOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}

type MockCategoryDetailRepository struct{ mock.Mock }

func (m *MockCategoryDetailRepository) AddAll(ctx context.Context, details []*transportorder.CategoryDetail) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

func (m *MockCategoryDetailRepository) GetByOrder(
	ctx context.Context, transportOrderID kernel.UUID,
) ([]*transportorder.CategoryDetail, error) {
	args := m.Called(ctx, transportOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transportorder.CategoryDetail), args.Error(1)
}

type MockNumberSequence struct{ mock.Mock }

func (m *MockNumberSequence) Next(ctx context.Context, prefix string, day time.Time) (string, error) {
	args := m.Called(ctx, prefix, day)
	return args.String(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Publish(ctx context.Context, n ports.Notification) {
	m.Called(ctx, n)
}

// MockUoW satisfies every narrowed unit of work interface in the commands
// package; each test wires only the expectations the handler under test uses.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) TransportOrderRepository() ports.TransportOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportOrderRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) ReceiptRepository() ports.ReceiptRepository {
	args := m.Called()
	return args.Get(0).(ports.ReceiptRepository)
}

func (m *MockUoW) CategoryDetailRepository() ports.CategoryDetailRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryDetailRepository)
}

func (m *MockUoW) NumberSequence() ports.NumberSequence {
	args := m.Called()
	return args.Get(0).(ports.NumberSequence)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockLoadingUoWFactory struct{ mock.Mock }

func (m *MockLoadingUoWFactory) Create() commands.LoadingUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadingUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockCategoryUoWFactory struct{ mock.Mock }

func (m *MockCategoryUoWFactory) Create() commands.CategoryUoW {
	args := m.Called()
	return args.Get(0).(commands.CategoryUoW)
}

type MockReceiptUoWFactory struct{ mock.Mock }

func (m *MockReceiptUoWFactory) Create() commands.ReceiptUoW {
	args := m.Called()
	return args.Get(0).(commands.ReceiptUoW)
}

// newTestOrder builds an order advanced to the requested stage.
func newTestOrder(t *testing.T, stage transportorder.Stage) *transportorder.Order {
	t.Helper()

	weight, err := kernel.NewWeight(50)
	require.NoError(t, err)

	order, err := transportorder.NewTransportOrder(
		kernel.NewUUID(), "TO202501010001", kernel.NewUUID(),
		"12 Harbor Rd", "Sorting Center 3",
		transportorder.Contacts{RecyclerName: "Wang", RecyclerPhone: "555-0101"},
		weight, decimal.NewFromFloat(100.00))
	require.NoError(t, err)

	steps := []struct {
		target  transportorder.Stage
		advance func() error
	}{
		{transportorder.StageAccepted, func() error { return order.Accept(kernel.NewUUID()) }},
		{transportorder.StagePickupConfirmed, order.ConfirmPickupLocation},
		{transportorder.StageArrivedAtPickup, order.ArriveAtPickup},
		{transportorder.StageLoadingCompleted, order.CompleteLoading},
		{transportorder.StageDeliveryConfirmed, order.ConfirmDeliveryLocation},
		{transportorder.StageArrivedAtDelivery, order.ArriveAtDelivery},
		{transportorder.StageCompleted, func() error { return order.Complete(nil) }},
	}
	for _, step := range steps {
		if order.Stage() == stage {
			break
		}
		require.NoError(t, step.advance())
		_ = step.target
	}
	require.Equal(t, stage, order.Stage())
	return order
}
