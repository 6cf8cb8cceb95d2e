package commands

import (
	"context"

	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"
)

// AddStorageInventoryCommandHandler places a completed appointment's
// material into the ledger: one StoragePoint record per category, with the
// appointment's total price allocated across categories proportional to
// weight.
type AddStorageInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAddStorageInventoryCommandHandler creates a handler for inventory intake.
func NewAddStorageInventoryCommandHandler(uowFactory InventoryUoWFactory) AddStorageInventoryCommandHandler {
	return AddStorageInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command. An appointment without category data
// yields errs.ErrIntegrityViolation and writes nothing; the caller reports
// it, never retries.
func (h AddStorageInventoryCommandHandler) Handle(ctx context.Context, cmd AddStorageInventoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	weights := make([]inventory.CategoryWeight, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		w, err := kernel.NewWeight(item.WeightKg)
		if err != nil {
			return err
		}
		weights = append(weights, inventory.CategoryWeight{Category: item.Category, Weight: w})
	}

	prices, err := inventory.AllocatePrice(cmd.TotalPrice(), weights)
	if err != nil {
		return err
	}

	records := make([]*inventory.Record, 0, len(weights))
	for i, cw := range weights {
		record, err := inventory.NewRecord(
			kernel.NewUUID(), cmd.RecyclerID(), cmd.AppointmentID(),
			cw.Category, cw.Weight, prices[i])
		if err != nil {
			return err
		}
		records = append(records, record)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InventoryRepository().AddAll(ctx, records); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
