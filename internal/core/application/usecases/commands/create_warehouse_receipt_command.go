package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var (
	ErrCreateWarehouseReceiptCommandIsNotConstructed = errors.New(
		"CreateWarehouseReceiptCommand must be created via NewCreateWarehouseReceiptCommand constructor",
	)
	ErrTotalWeightIsInvalid = errors.New("total weight must be greater than 0")
)

// CreateWarehouseReceiptCommand represents a base-warehouse worker recording
// the intake of a completed transport order's material.
type CreateWarehouseReceiptCommand struct { //nolint:recvcheck //using for validation
	receiptID        kernel.UUID
	transportOrderID kernel.UUID
	workerID         kernel.UUID
	totalWeightKg    float64
	categorySummary  string
	notes            string

	guard guard.ConstructorGuard
}

// NewCreateWarehouseReceiptCommand creates a command to issue a warehouse
// receipt for a completed transport order.
func NewCreateWarehouseReceiptCommand(
	receiptID kernel.UUID,
	transportOrderID kernel.UUID,
	workerID kernel.UUID,
	totalWeightKg float64,
	categorySummary string,
	notes string,
) (CreateWarehouseReceiptCommand, error) {
	if err := errors.Join(
		receiptID.Validate(), transportOrderID.Validate(), workerID.Validate(),
	); err != nil {
		return CreateWarehouseReceiptCommand{}, err
	}
	if totalWeightKg <= 0 {
		return CreateWarehouseReceiptCommand{}, ErrTotalWeightIsInvalid
	}

	return CreateWarehouseReceiptCommand{
		receiptID:        receiptID,
		transportOrderID: transportOrderID,
		workerID:         workerID,
		totalWeightKg:    totalWeightKg,
		categorySummary:  categorySummary,
		notes:            notes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWarehouseReceiptCommand) Validate() error {
	return c.guard.Validate(ErrCreateWarehouseReceiptCommandIsNotConstructed)
}

// ReceiptID returns the identifier for the new receipt.
func (c CreateWarehouseReceiptCommand) ReceiptID() kernel.UUID { return c.receiptID }

// TransportOrderID returns the completed order being received.
func (c CreateWarehouseReceiptCommand) TransportOrderID() kernel.UUID { return c.transportOrderID }

// WorkerID returns the warehouse worker recording the intake.
func (c CreateWarehouseReceiptCommand) WorkerID() kernel.UUID { return c.workerID }

// TotalWeightKg returns the received weight in kilograms.
func (c CreateWarehouseReceiptCommand) TotalWeightKg() float64 { return c.totalWeightKg }

// CategorySummary returns the denormalized category summary for the receipt.
func (c CreateWarehouseReceiptCommand) CategorySummary() string { return c.categorySummary }

// Notes returns the free-text intake notes.
func (c CreateWarehouseReceiptCommand) Notes() string { return c.notes }
