package transportorder_test

import (
	"testing"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *transportorder.Order {
	t.Helper()

	weight, err := kernel.NewWeight(50)
	require.NoError(t, err)

	order, err := transportorder.NewTransportOrder(
		kernel.NewUUID(),
		"TO202501010001",
		kernel.NewUUID(),
		"12 Storage Point Rd",
		"1 Sorting Center Ave",
		transportorder.Contacts{
			RecyclerName:  "Chen",
			RecyclerPhone: "555-0101",
			BaseName:      "Ortiz",
			BasePhone:     "555-0202",
		},
		weight,
		decimal.NewFromFloat(125.50),
	)
	require.NoError(t, err)
	return order
}

func TestNewTransportOrder(t *testing.T) {
	order := newTestOrder(t)

	require.NoError(t, order.Validate())
	assert.Equal(t, transportorder.StagePending, order.Stage())
	assert.Equal(t, transportorder.StatusPending, order.Status())
	assert.Nil(t, order.TransporterID())
	assert.Nil(t, order.ActualWeight())
	assert.Equal(t, "TO202501010001", order.Number())
}

func TestNewTransportOrder_Validation(t *testing.T) {
	weight, _ := kernel.NewWeight(50)

	t.Run("empty_number", func(t *testing.T) {
		_, err := transportorder.NewTransportOrder(
			kernel.NewUUID(), "", kernel.NewUUID(),
			"a", "b", transportorder.Contacts{}, weight, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("missing_pickup_address", func(t *testing.T) {
		_, err := transportorder.NewTransportOrder(
			kernel.NewUUID(), "TO202501010001", kernel.NewUUID(),
			"", "b", transportorder.Contacts{}, weight, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("negative_price", func(t *testing.T) {
		_, err := transportorder.NewTransportOrder(
			kernel.NewUUID(), "TO202501010001", kernel.NewUUID(),
			"a", "b", transportorder.Contacts{}, weight, decimal.NewFromInt(-1))
		require.Error(t, err)
	})

	t.Run("zero_weight", func(t *testing.T) {
		_, err := transportorder.NewTransportOrder(
			kernel.NewUUID(), "TO202501010001", kernel.NewUUID(),
			"a", "b", transportorder.Contacts{}, kernel.Weight{}, decimal.Zero)
		require.Error(t, err)
	})
}

func TestOrder_Validate_ZeroValue(t *testing.T) {
	var order transportorder.Order
	require.ErrorIs(t, order.Validate(), transportorder.ErrOrderIsNotConstructed)
}

func TestOrder_FullForwardWorkflow(t *testing.T) {
	order := newTestOrder(t)
	transporterID := kernel.NewUUID()

	require.NoError(t, order.Accept(transporterID))
	assert.Equal(t, transportorder.StatusAccepted, order.Status())
	require.NotNil(t, order.TransporterID())
	assert.True(t, transporterID.IsEqual(*order.TransporterID()))

	require.NoError(t, order.ConfirmPickupLocation())
	assert.Equal(t, transportorder.StatusInTransit, order.Status())

	require.NoError(t, order.ArriveAtPickup())
	require.NoError(t, order.CompleteLoading())
	require.NoError(t, order.ConfirmDeliveryLocation())
	require.NoError(t, order.ArriveAtDelivery())

	actual, err := kernel.NewWeight(49.5)
	require.NoError(t, err)
	require.NoError(t, order.Complete(&actual))

	assert.Equal(t, transportorder.StatusCompleted, order.Status())
	require.NotNil(t, order.ActualWeight())
	assert.InDelta(t, 49.5, order.ActualWeight().Kilograms(), 1e-9)
}

func TestOrder_StageTimestampsAreMonotonic(t *testing.T) {
	order := newTestOrder(t)

	require.NoError(t, order.Accept(kernel.NewUUID()))
	require.NoError(t, order.ConfirmPickupLocation())
	require.NoError(t, order.ArriveAtPickup())
	require.NoError(t, order.CompleteLoading())
	require.NoError(t, order.ConfirmDeliveryLocation())
	require.NoError(t, order.ArriveAtDelivery())
	require.NoError(t, order.Complete(nil))

	s := order.Snapshot()
	stamps := []*time.Time{
		s.AcceptedAt,
		s.PickupConfirmedAt,
		s.ArrivedAtPickupAt,
		s.LoadingCompletedAt,
		s.DeliveryConfirmedAt,
		s.ArrivedAtDeliveryAt,
		s.DeliveredAt,
		s.CompletedAt,
	}

	for i, ts := range stamps {
		require.NotNil(t, ts, "timestamp %d must be set", i)
		if i > 0 {
			assert.False(t, ts.Before(*stamps[i-1]), "timestamp %d must not precede its predecessor", i)
		}
	}
}

func TestOrder_InvalidTransitionLeavesOrderUnchanged(t *testing.T) {
	order := newTestOrder(t)
	require.NoError(t, order.Accept(kernel.NewUUID()))

	// Stage is Accepted, not PickupConfirmed: arrival must be rejected.
	err := order.ArriveAtPickup()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)

	assert.Equal(t, transportorder.StageAccepted, order.Stage())
	assert.Nil(t, order.Snapshot().ArrivedAtPickupAt)
}

func TestOrder_Accept_RequiresValidTransporter(t *testing.T) {
	order := newTestOrder(t)

	err := order.Accept(kernel.UUID{})
	require.Error(t, err)
	assert.Equal(t, transportorder.StagePending, order.Stage())
}

func TestOrder_Complete_WithoutActualWeight(t *testing.T) {
	order := newTestOrder(t)
	require.NoError(t, order.Accept(kernel.NewUUID()))
	require.NoError(t, order.ConfirmPickupLocation())
	require.NoError(t, order.ArriveAtPickup())
	require.NoError(t, order.CompleteLoading())
	require.NoError(t, order.ConfirmDeliveryLocation())
	require.NoError(t, order.ArriveAtDelivery())

	require.NoError(t, order.Complete(nil))
	assert.Nil(t, order.ActualWeight())
}

func TestOrder_Rate(t *testing.T) {
	t.Run("only_completed_orders_can_be_rated", func(t *testing.T) {
		order := newTestOrder(t)

		err := order.Rate(5, "fast pickup")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("rating_is_recorded_once", func(t *testing.T) {
		order := completedTestOrder(t)

		require.NoError(t, order.Rate(4, "minor delay at the gate"))
		require.NotNil(t, order.Rating())
		assert.Equal(t, 4, *order.Rating())

		err := order.Rate(5, "")
		require.ErrorIs(t, err, transportorder.ErrOrderAlreadyRated)
	})

	t.Run("rating_out_of_range", func(t *testing.T) {
		order := completedTestOrder(t)

		err := order.Rate(6, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreOrder_RoundTrip(t *testing.T) {
	order := newTestOrder(t)
	require.NoError(t, order.Accept(kernel.NewUUID()))
	require.NoError(t, order.ConfirmPickupLocation())

	restored, err := transportorder.RestoreOrder(order.Snapshot())
	require.NoError(t, err)

	assert.True(t, restored.ID().IsEqual(order.ID()))
	assert.Equal(t, order.Stage(), restored.Stage())
	assert.Equal(t, order.Number(), restored.Number())
	require.NotNil(t, restored.Snapshot().PickupConfirmedAt)

	// The restored aggregate continues the workflow where the original left off.
	require.NoError(t, restored.ArriveAtPickup())
}

func TestRestoreOrder_RejectsInvalidStage(t *testing.T) {
	order := newTestOrder(t)
	snapshot := order.Snapshot()
	snapshot.Stage = transportorder.StageUnknown

	_, err := transportorder.RestoreOrder(snapshot)
	require.Error(t, err)
}

func completedTestOrder(t *testing.T) *transportorder.Order {
	t.Helper()

	order := newTestOrder(t)
	require.NoError(t, order.Accept(kernel.NewUUID()))
	require.NoError(t, order.ConfirmPickupLocation())
	require.NoError(t, order.ArriveAtPickup())
	require.NoError(t, order.CompleteLoading())
	require.NoError(t, order.ConfirmDeliveryLocation())
	require.NoError(t, order.ArriveAtDelivery())
	require.NoError(t, order.Complete(nil))
	return order
}
