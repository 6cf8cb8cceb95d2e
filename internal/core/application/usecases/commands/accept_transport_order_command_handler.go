package commands

import (
	"context"
)

// AcceptTransportOrderCommandHandler assigns a pending order to the claiming
// transporter. The repository update is guarded by the stage the order was
// loaded in, so two transporters racing for the same order resolve to exactly
// one winner.
type AcceptTransportOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptTransportOrderCommandHandler creates a handler for order acceptance.
func NewAcceptTransportOrderCommandHandler(uowFactory OrderUoWFactory) AcceptTransportOrderCommandHandler {
	return AcceptTransportOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command. Returns errs.ErrStateConflict when
// the order is no longer pending or was claimed concurrently.
func (h AcceptTransportOrderCommandHandler) Handle(ctx context.Context, cmd AcceptTransportOrderCommand) error {
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
	if err = order.Accept(cmd.TransporterID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order, loadedStage); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
