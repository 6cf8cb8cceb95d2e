package commands

import (
	"context"
	"log/slog"
)

// CompleteLoadingCommandHandler advances the order to LoadingCompleted and
// flips the recycler's StoragePoint inventory to InTransit. The stage
// transition and the custody move commit or roll back as one transaction, so
// custody can never point at two places at once.
type CompleteLoadingCommandHandler struct {
	uowFactory LoadingUoWFactory
	logger     *slog.Logger
}

// NewCompleteLoadingCommandHandler creates a handler for the loading step.
func NewCompleteLoadingCommandHandler(uowFactory LoadingUoWFactory, logger *slog.Logger) CompleteLoadingCommandHandler {
	return CompleteLoadingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the loading completion command. A recycler with nothing
// at the storage point is legitimate; the zero-row move is logged, not
// rejected.
func (h CompleteLoadingCommandHandler) Handle(ctx context.Context, cmd CompleteLoadingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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
	if err = order.CompleteLoading(); err != nil {
		return err
	}

	if err = repo.Update(ctx, order, loadedStage); err != nil {
		return err
	}

	moved, err := uow.InventoryRepository().MoveAllToInTransit(ctx, order.RecyclerID())
	if err != nil {
		return err
	}
	if moved == 0 {
		h.logger.WarnContext(ctx, "loading completed with no storage-point inventory to move",
			"order_id", order.ID().String(),
			"recycler_id", order.RecyclerID().String())
	}

	return uow.Commit(ctx)
}
