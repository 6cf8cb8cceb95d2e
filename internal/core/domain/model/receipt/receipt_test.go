package receipt_test

import (
	"testing"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/receipt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReceipt(t *testing.T) *receipt.Receipt {
	t.Helper()

	weight, err := kernel.NewWeight(49.5)
	require.NoError(t, err)

	r, err := receipt.NewReceipt(
		kernel.NewUUID(),
		"WR202501010001",
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		weight,
		"paper 30kg, plastic 19.5kg",
		"pallet slightly damp",
	)
	require.NoError(t, err)
	return r
}

func TestNewReceipt(t *testing.T) {
	r := newTestReceipt(t)

	require.NoError(t, r.Validate())
	assert.Equal(t, receipt.StatusReceived, r.Status())
	assert.Equal(t, "WR202501010001", r.Number())
	assert.InDelta(t, 49.5, r.TotalWeight().Kilograms(), 1e-9)
}

func TestNewReceipt_Validation(t *testing.T) {
	weight, _ := kernel.NewWeight(10)

	t.Run("empty_number", func(t *testing.T) {
		_, err := receipt.NewReceipt(
			kernel.NewUUID(), "", kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), weight, "", "")
		require.Error(t, err)
	})

	t.Run("missing_worker", func(t *testing.T) {
		_, err := receipt.NewReceipt(
			kernel.NewUUID(), "WR202501010001", kernel.NewUUID(), kernel.NewUUID(),
			kernel.UUID{}, weight, "", "")
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var r receipt.Receipt
		require.ErrorIs(t, r.Validate(), receipt.ErrReceiptIsNotConstructed)
	})
}

func TestReceipt_Cancel(t *testing.T) {
	r := newTestReceipt(t)

	require.NoError(t, r.Cancel())
	assert.Equal(t, receipt.StatusCancelled, r.Status())

	require.ErrorIs(t, r.Cancel(), receipt.ErrReceiptAlreadyCancelled)
}

func TestRestoreReceipt_RoundTrip(t *testing.T) {
	original := newTestReceipt(t)

	restored, err := receipt.RestoreReceipt(
		original.ID(), original.Number(), original.TransportOrderID(),
		original.RecyclerID(), original.WorkerID(), original.TotalWeight(),
		original.CategorySummary(), original.Notes(), original.Status(),
		original.CreatedAt())

	require.NoError(t, err)
	assert.True(t, restored.ID().IsEqual(original.ID()))
	assert.Equal(t, original.Status(), restored.Status())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Received", receipt.StatusReceived.String())
	assert.Equal(t, "Cancelled", receipt.StatusCancelled.String())
	assert.Equal(t, "Unknown", receipt.StatusUnknown.String())
	require.Error(t, receipt.StatusUnknown.Validate())
}
