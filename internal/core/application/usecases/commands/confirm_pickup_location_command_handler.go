package commands

import (
	"context"

	"recycling/internal/core/domain/model/transportorder"
)

// ConfirmPickupLocationCommandHandler advances an accepted order into the
// in-transit sub-flow.
type ConfirmPickupLocationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmPickupLocationCommandHandler creates a handler for pickup confirmation.
func NewConfirmPickupLocationCommandHandler(uowFactory OrderUoWFactory) ConfirmPickupLocationCommandHandler {
	return ConfirmPickupLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup confirmation command.
func (h ConfirmPickupLocationCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *transportorder.Order) error {
		return o.ConfirmPickupLocation()
	})
}
