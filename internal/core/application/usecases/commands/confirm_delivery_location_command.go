package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrConfirmDeliveryLocationCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryLocationCommand must be created via NewConfirmDeliveryLocationCommand constructor",
)

// ConfirmDeliveryLocationCommand represents the transporter confirming the
// destination warehouse after loading.
type ConfirmDeliveryLocationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryLocationCommand creates a command to confirm the delivery location.
func NewConfirmDeliveryLocationCommand(orderID kernel.UUID) (ConfirmDeliveryLocationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmDeliveryLocationCommand{}, err
	}

	return ConfirmDeliveryLocationCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryLocationCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c ConfirmDeliveryLocationCommand) OrderID() kernel.UUID { return c.orderID }
