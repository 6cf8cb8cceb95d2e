package commands

import (
	"context"

	"recycling/internal/core/domain/model/transportorder"
)

// ArriveAtPickupCommandHandler records the transporter's arrival at the
// storage point.
type ArriveAtPickupCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewArriveAtPickupCommandHandler creates a handler for pickup arrival.
func NewArriveAtPickupCommandHandler(uowFactory OrderUoWFactory) ArriveAtPickupCommandHandler {
	return ArriveAtPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup arrival command.
func (h ArriveAtPickupCommandHandler) Handle(ctx context.Context, cmd ArriveAtPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *transportorder.Order) error {
		return o.ArriveAtPickup()
	})
}
