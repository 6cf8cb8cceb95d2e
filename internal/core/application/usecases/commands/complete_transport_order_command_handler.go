package commands

import (
	"context"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/ports"
)

// CompleteTransportOrderCommandHandler finishes the forward workflow and
// announces the completion. Warehouse intake happens separately through
// receipt creation.
type CompleteTransportOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCompleteTransportOrderCommandHandler creates a handler for order completion.
func NewCompleteTransportOrderCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.Notifier,
) CompleteTransportOrderCommandHandler {
	return CompleteTransportOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command.
func (h CompleteTransportOrderCommandHandler) Handle(ctx context.Context, cmd CompleteTransportOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var actualWeight *kernel.Weight
	if cmd.ActualWeightKg() != nil {
		w, err := kernel.NewWeight(*cmd.ActualWeightKg())
		if err != nil {
			return err
		}
		actualWeight = &w
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TransportOrderRepository()

	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	loadedStage := order.Stage()
	if err = order.Complete(actualWeight); err != nil {
		return err
	}

	if err = repo.Update(ctx, order, loadedStage); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ctx, ports.Notification{
		Event:            "transport_order.completed",
		TransportOrderID: order.ID().String(),
		OrderNumber:      order.Number(),
		RecyclerID:       order.RecyclerID().String(),
		Message:          "transport order " + order.Number() + " has been delivered",
		OccurredAt:       time.Now().UTC(),
	})

	return nil
}
