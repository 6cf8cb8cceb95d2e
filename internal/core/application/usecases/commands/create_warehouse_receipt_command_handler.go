package commands

import (
	"context"
	"errors"
	"time"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/receipt"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/core/ports"
	"recycling/internal/pkg/errs"
)

// CreateWarehouseReceiptCommandHandler finalizes warehouse intake: it issues
// the receipt and retires the recycler's in-transit inventory to Warehouse
// custody in one transaction. The unique receipt-per-order constraint in the
// store is the backstop against two workers racing on the same order.
type CreateWarehouseReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
	notifier   ports.Notifier
}

// NewCreateWarehouseReceiptCommandHandler creates a handler for receipt creation.
func NewCreateWarehouseReceiptCommandHandler(
	uowFactory ReceiptUoWFactory, notifier ports.Notifier,
) CreateWarehouseReceiptCommandHandler {
	return CreateWarehouseReceiptCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the receipt creation command. The order must be Completed
// and must not already have a receipt, else errs.ErrIntegrityViolation is
// returned before any write.
func (h CreateWarehouseReceiptCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseReceiptCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	totalWeight, err := kernel.NewWeight(cmd.TotalWeightKg())
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

	order, err := uow.TransportOrderRepository().Get(ctx, cmd.TransportOrderID())
	if err != nil {
		return err
	}
	if order.Stage() != transportorder.StageCompleted {
		return errs.NewIntegrityViolationError(
			"receipt requires a completed transport order, order is " + order.Stage().String())
	}

	_, err = uow.ReceiptRepository().GetByTransportOrder(ctx, order.ID())
	if err == nil {
		return errs.NewIntegrityViolationError(
			"transport order " + order.Number() + " already has a receipt")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	number, err := uow.NumberSequence().Next(ctx, ports.WarehouseReceiptNumberPrefix, time.Now().UTC())
	if err != nil {
		return err
	}

	rcpt, err := receipt.NewReceipt(
		cmd.ReceiptID(), number, order.ID(), order.RecyclerID(), cmd.WorkerID(),
		totalWeight, cmd.CategorySummary(), cmd.Notes())
	if err != nil {
		return err
	}

	if err = uow.ReceiptRepository().Add(ctx, rcpt); err != nil {
		return err
	}

	if _, err = uow.InventoryRepository().RetireForReceipt(ctx, order.RecyclerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ctx, ports.Notification{
		Event:            "warehouse_receipt.created",
		TransportOrderID: order.ID().String(),
		OrderNumber:      order.Number(),
		ReceiptNumber:    rcpt.Number(),
		RecyclerID:       order.RecyclerID().String(),
		Message:          "warehouse receipt " + rcpt.Number() + " issued for order " + order.Number(),
		OccurredAt:       time.Now().UTC(),
	})

	return nil
}
