package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var (
	ErrCompleteTransportOrderCommandIsNotConstructed = errors.New(
		"CompleteTransportOrderCommand must be created via NewCompleteTransportOrderCommand constructor",
	)
	ErrActualWeightIsInvalid = errors.New("actual weight must be greater than 0")
)

// CompleteTransportOrderCommand represents the final handover at the base
// warehouse. The actual weight is the figure measured on the warehouse
// scale; it is optional and may differ from the estimate.
type CompleteTransportOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actualWeightKg *float64

	guard guard.ConstructorGuard
}

// NewCompleteTransportOrderCommand creates a command to complete a transport
// order. Pass nil when no weight was measured.
func NewCompleteTransportOrderCommand(orderID kernel.UUID, actualWeightKg *float64) (CompleteTransportOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteTransportOrderCommand{}, err
	}
	if actualWeightKg != nil && *actualWeightKg <= 0 {
		return CompleteTransportOrderCommand{}, ErrActualWeightIsInvalid
	}

	return CompleteTransportOrderCommand{
		orderID:        orderID,
		actualWeightKg: actualWeightKg,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTransportOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTransportOrderCommandIsNotConstructed)
}

// OrderID returns the order being completed.
func (c CompleteTransportOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ActualWeightKg returns the measured weight in kilograms, or nil.
func (c CompleteTransportOrderCommand) ActualWeightKg() *float64 { return c.actualWeightKg }
