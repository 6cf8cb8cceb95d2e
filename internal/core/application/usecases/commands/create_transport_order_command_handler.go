package commands

import (
	"context"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/core/ports"
)

// CreateTransportOrderCommandHandler handles the business logic for
// transport order creation: allocating the day-scoped order number,
// persisting the order in Pending, and announcing it to transporters.
type CreateTransportOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	notifier   ports.Notifier
}

// NewCreateTransportOrderCommandHandler creates a handler for order creation.
// The notifier is called only after the transaction commits.
func NewCreateTransportOrderCommandHandler(
	uowFactory CreateOrderUoWFactory, notifier ports.Notifier,
) CreateTransportOrderCommandHandler {
	return CreateTransportOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order creation command. The order number is allocated
// inside the transaction, so a failed creation never burns a number that was
// handed out.
func (h CreateTransportOrderCommandHandler) Handle(ctx context.Context, cmd CreateTransportOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	weight, err := kernel.NewWeight(cmd.EstimatedWeightKg())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	number, err := uow.NumberSequence().Next(ctx, ports.TransportOrderNumberPrefix, time.Now().UTC())
	if err != nil {
		return err
	}

	order, err := transportorder.NewTransportOrder(
		cmd.OrderID(), number, cmd.RecyclerID(),
		cmd.PickupAddress(), cmd.DestinationAddress(), cmd.Contacts(),
		weight, cmd.TotalPrice())
	if err != nil {
		return err
	}

	if err = uow.TransportOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ctx, ports.Notification{
		Event:            "transport_order.created",
		TransportOrderID: order.ID().String(),
		OrderNumber:      order.Number(),
		RecyclerID:       order.RecyclerID().String(),
		Message:          "transport order " + order.Number() + " is awaiting a transporter",
		OccurredAt:       time.Now().UTC(),
	})

	return nil
}
