package commands

import (
	"errors"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/pkg/guard"
)

var ErrAcceptTransportOrderCommandIsNotConstructed = errors.New(
	"AcceptTransportOrderCommand must be created via NewAcceptTransportOrderCommand constructor",
)

// AcceptTransportOrderCommand represents a transporter claiming a pending
// order. First transporter to commit wins; the loser gets a state conflict.
type AcceptTransportOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	transporterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptTransportOrderCommand creates a command for a transporter to
// accept a pending transport order.
func NewAcceptTransportOrderCommand(orderID, transporterID kernel.UUID) (AcceptTransportOrderCommand, error) {
	cmd := AcceptTransportOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), transporterID.Validate()); err != nil {
		return AcceptTransportOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.transporterID = transporterID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptTransportOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptTransportOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c AcceptTransportOrderCommand) OrderID() kernel.UUID { return c.orderID }

// TransporterID returns the claiming transporter.
func (c AcceptTransportOrderCommand) TransporterID() kernel.UUID { return c.transporterID }
