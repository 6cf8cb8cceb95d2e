package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrCompleteLoadingCommandIsNotConstructed = errors.New(
	"CompleteLoadingCommand must be created via NewCompleteLoadingCommand constructor",
)

// CompleteLoadingCommand represents the transporter reporting that the
// material is loaded on the vehicle. Handling it also moves the recycler's
// storage-point inventory into transit, in the same transaction.
type CompleteLoadingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteLoadingCommand creates a command to record completed loading.
func NewCompleteLoadingCommand(orderID kernel.UUID) (CompleteLoadingCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteLoadingCommand{}, err
	}

	return CompleteLoadingCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteLoadingCommand) Validate() error {
	return c.guard.Validate(ErrCompleteLoadingCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c CompleteLoadingCommand) OrderID() kernel.UUID { return c.orderID }
