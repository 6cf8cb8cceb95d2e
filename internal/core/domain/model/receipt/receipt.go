// Package receipt contains the WarehouseReceipt aggregate: the record
// finalizing intake of a transport order's material at the sorting center.
// A receipt exists one-to-one with a completed transport order, and its
// creation is atomic with the retirement of the recycler's transported
// inventory.
package receipt

import (
	"errors"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"
)

var (
	// ErrReceiptIsNotConstructed is returned when a Receipt was not created
	// through NewReceipt or RestoreReceipt.
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt or RestoreReceipt")

	// ErrReceiptAlreadyCancelled is returned when cancelling an already
	// cancelled receipt.
	ErrReceiptAlreadyCancelled = errors.New("receipt is already cancelled")
)

// Status is the lifecycle state of a warehouse receipt. Receipts are
// immutable after creation except for the flip to Cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusReceived is the normal state of a receipt.
	StatusReceived

	// StatusCancelled marks a receipt voided after the fact.
	StatusCancelled
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusReceived:
		return "Received"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if s != StatusReceived && s != StatusCancelled {
		return errs.NewValueIsInvalidError("receipt status")
	}
	return nil
}

// Receipt is the warehouse intake record for one transport order.
type Receipt struct {
	id               kernel.UUID
	number           string
	transportOrderID kernel.UUID
	recyclerID       kernel.UUID
	workerID         kernel.UUID
	totalWeight      kernel.Weight
	categorySummary  string
	notes            string
	status           Status
	createdAt        time.Time

	isConstructed bool
}

// NewReceipt creates a receipt in Received status. The number is the
// day-scoped document number (for example "WR202501010007") allocated by the
// number sequence.
func NewReceipt(
	id kernel.UUID,
	number string,
	transportOrderID kernel.UUID,
	recyclerID kernel.UUID,
	workerID kernel.UUID,
	totalWeight kernel.Weight,
	categorySummary string,
	notes string,
) (*Receipt, error) {
	if err := errors.Join(
		id.Validate(), transportOrderID.Validate(), recyclerID.Validate(),
		workerID.Validate(), totalWeight.Validate(),
	); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("receipt number")
	}

	return &Receipt{
		id:               id,
		number:           number,
		transportOrderID: transportOrderID,
		recyclerID:       recyclerID,
		workerID:         workerID,
		totalWeight:      totalWeight,
		categorySummary:  categorySummary,
		notes:            notes,
		status:           StatusReceived,
		createdAt:        time.Now().UTC(),
		isConstructed:    true,
	}, nil
}

// RestoreReceipt reconstructs a receipt from persistence.
func RestoreReceipt(
	id kernel.UUID,
	number string,
	transportOrderID kernel.UUID,
	recyclerID kernel.UUID,
	workerID kernel.UUID,
	totalWeight kernel.Weight,
	categorySummary string,
	notes string,
	status Status,
	createdAt time.Time,
) (*Receipt, error) {
	if err := errors.Join(
		id.Validate(), transportOrderID.Validate(), recyclerID.Validate(),
		workerID.Validate(), totalWeight.Validate(), status.Validate(),
	); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("receipt number")
	}

	return &Receipt{
		id:               id,
		number:           number,
		transportOrderID: transportOrderID,
		recyclerID:       recyclerID,
		workerID:         workerID,
		totalWeight:      totalWeight,
		categorySummary:  categorySummary,
		notes:            notes,
		status:           status,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Receipt was built through a constructor.
func (r *Receipt) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

// ID returns the receipt's unique identifier.
func (r *Receipt) ID() kernel.UUID { return r.id }

// Number returns the display-only receipt number.
func (r *Receipt) Number() string { return r.number }

// TransportOrderID returns the finalized transport order.
func (r *Receipt) TransportOrderID() kernel.UUID { return r.transportOrderID }

// RecyclerID returns the recycler whose material was received.
func (r *Receipt) RecyclerID() kernel.UUID { return r.recyclerID }

// WorkerID returns the base-warehouse worker who recorded the intake.
func (r *Receipt) WorkerID() kernel.UUID { return r.workerID }

// TotalWeight returns the weight received at the warehouse.
func (r *Receipt) TotalWeight() kernel.Weight { return r.totalWeight }

// CategorySummary returns the denormalized category summary.
func (r *Receipt) CategorySummary() string { return r.categorySummary }

// Notes returns the free-text intake notes.
func (r *Receipt) Notes() string { return r.notes }

// Status returns the receipt status.
func (r *Receipt) Status() Status { return r.status }

// CreatedAt returns the intake time.
func (r *Receipt) CreatedAt() time.Time { return r.createdAt }

// Cancel voids the receipt. The only mutation a receipt permits.
func (r *Receipt) Cancel() error {
	if r.status == StatusCancelled {
		return ErrReceiptAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}
