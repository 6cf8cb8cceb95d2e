package commands

import (
	"context"

	"recycling/internal/core/domain/model/transportorder"
)

// RateTransportOrderCommandHandler records the recycler's rating on a
// completed order.
type RateTransportOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRateTransportOrderCommandHandler creates a handler for order rating.
func NewRateTransportOrderCommandHandler(uowFactory OrderUoWFactory) RateTransportOrderCommandHandler {
	return RateTransportOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command. Rating is valid only on a Completed
// order and only once.
func (h RateTransportOrderCommandHandler) Handle(ctx context.Context, cmd RateTransportOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return executeTransition(ctx, h.uowFactory, cmd.OrderID(), func(o *transportorder.Order) error {
		return o.Rate(cmd.Rating(), cmd.Review())
	})
}
