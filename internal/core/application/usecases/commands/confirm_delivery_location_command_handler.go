package commands

import (
	"context"

	"recycling/internal/core/domain/model/transportorder"
)

// ConfirmDeliveryLocationCommandHandler records confirmation of the
// destination warehouse.
type ConfirmDeliveryLocationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmDeliveryLocationCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryLocationCommandHandler(uowFactory OrderUoWFactory) ConfirmDeliveryLocationCommandHandler {
	return ConfirmDeliveryLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
func (h ConfirmDeliveryLocationCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *transportorder.Order) error {
		return o.ConfirmDeliveryLocation()
	})
}
