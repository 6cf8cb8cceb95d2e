package commands

import (
	"context"

	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/transportorder"
)

// executeTransition runs one order-only lifecycle transition: load the order,
// apply the domain transition, write back guarded by the stage the order was
// loaded in. A concurrent transition makes the guarded update match zero rows
// and the whole unit of work rolls back with a state conflict.
func executeTransition(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	apply func(*transportorder.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TransportOrderRepository()

	order, err := repo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	loadedStage := order.Stage()
	if err = apply(order); err != nil {
		return err
	}

	if err = repo.Update(ctx, order, loadedStage); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
