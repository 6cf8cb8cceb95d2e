package inventory

import (
	"errors"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrRecordIsNotConstructed is returned when a Record was not created
// through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Record is one line of the inventory ledger: a weight of one material
// category, owned by one recycler, in one custody state, traceable to the
// source order that produced it. Records are written by the
// appointment-completion flow and thereafter mutated only by the bulk
// custody transitions of the transport workflow.
type Record struct {
	id            kernel.UUID
	recyclerID    kernel.UUID
	sourceOrderID kernel.UUID
	category      string
	custody       CustodyType
	weight        kernel.Weight
	price         decimal.Decimal
	createdAt     time.Time

	isConstructed bool
}

// NewRecord creates a ledger record in StoragePoint custody. New material
// always enters the ledger at the recycler's storage point; later custody
// states are reached only through the bulk transitions.
func NewRecord(
	id kernel.UUID,
	recyclerID kernel.UUID,
	sourceOrderID kernel.UUID,
	category string,
	weight kernel.Weight,
	price decimal.Decimal,
) (*Record, error) {
	if err := errors.Join(id.Validate(), recyclerID.Validate(), sourceOrderID.Validate(), weight.Validate()); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("price must not be negative")
	}

	return &Record{
		id:            id,
		recyclerID:    recyclerID,
		sourceOrderID: sourceOrderID,
		category:      category,
		custody:       CustodyStoragePoint,
		weight:        weight,
		price:         price,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRecord reconstructs a ledger record from persistence.
func RestoreRecord(
	id kernel.UUID,
	recyclerID kernel.UUID,
	sourceOrderID kernel.UUID,
	category string,
	custody CustodyType,
	weight kernel.Weight,
	price decimal.Decimal,
	createdAt time.Time,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(), recyclerID.Validate(), sourceOrderID.Validate(),
		weight.Validate(), custody.Validate(),
	); err != nil {
		return nil, err
	}
	if category == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}

	return &Record{
		id:            id,
		recyclerID:    recyclerID,
		sourceOrderID: sourceOrderID,
		category:      category,
		custody:       custody,
		weight:        weight,
		price:         price,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Record was built through a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID { return r.id }

// RecyclerID returns the owning recycler.
func (r *Record) RecyclerID() kernel.UUID { return r.recyclerID }

// SourceOrderID returns the appointment order that produced the material.
func (r *Record) SourceOrderID() kernel.UUID { return r.sourceOrderID }

// Category returns the material category key.
func (r *Record) Category() string { return r.category }

// Custody returns the record's current custody state.
func (r *Record) Custody() CustodyType { return r.custody }

// Weight returns the record's weight.
func (r *Record) Weight() kernel.Weight { return r.weight }

// Price returns the monetary value allocated to this record.
func (r *Record) Price() decimal.Decimal { return r.price }

// CreatedAt returns the time the material entered the ledger.
func (r *Record) CreatedAt() time.Time { return r.createdAt }
