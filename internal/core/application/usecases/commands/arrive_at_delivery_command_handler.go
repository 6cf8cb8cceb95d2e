package commands

import (
	"context"

	"recycling/internal/core/domain/model/transportorder"
)

// ArriveAtDeliveryCommandHandler records the transporter's arrival at the
// base warehouse.
type ArriveAtDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewArriveAtDeliveryCommandHandler creates a handler for warehouse arrival.
func NewArriveAtDeliveryCommandHandler(uowFactory OrderUoWFactory) ArriveAtDeliveryCommandHandler {
	return ArriveAtDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse arrival command.
func (h ArriveAtDeliveryCommandHandler) Handle(ctx context.Context, cmd ArriveAtDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *transportorder.Order) error {
		return o.ArriveAtDelivery()
	})
}
