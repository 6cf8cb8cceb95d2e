package cmd

import (
	"log/slog"

	"recycling/internal/adapters/out/postgres"
	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/application/usecases/queries"
	"recycling/internal/core/ports"
	"recycling/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTransportOrderCommandHandler() commands.CreateTransportOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTransportOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAcceptTransportOrderCommandHandler() commands.AcceptTransportOrderCommandHandler {
	return commands.NewAcceptTransportOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPickupLocationCommandHandler() commands.ConfirmPickupLocationCommandHandler {
	return commands.NewConfirmPickupLocationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateArriveAtPickupCommandHandler() commands.ArriveAtPickupCommandHandler {
	return commands.NewArriveAtPickupCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteLoadingCommandHandler() commands.CompleteLoadingCommandHandler {
	var f commands.LoadingUoWFactory = FuncLoadingUoWFactory(func() commands.LoadingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteLoadingCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateConfirmDeliveryLocationCommandHandler() commands.ConfirmDeliveryLocationCommandHandler {
	return commands.NewConfirmDeliveryLocationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateArriveAtDeliveryCommandHandler() commands.ArriveAtDeliveryCommandHandler {
	return commands.NewArriveAtDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteTransportOrderCommandHandler() commands.CompleteTransportOrderCommandHandler {
	return commands.NewCompleteTransportOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRateTransportOrderCommandHandler() commands.RateTransportOrderCommandHandler {
	return commands.NewRateTransportOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddStorageInventoryCommandHandler() commands.AddStorageInventoryCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddStorageInventoryCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordCategoryDetailsCommandHandler() commands.RecordCategoryDetailsCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordCategoryDetailsCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWarehouseReceiptCommandHandler() commands.CreateWarehouseReceiptCommandHandler {
	var f commands.ReceiptUoWFactory = FuncReceiptUoWFactory(func() commands.ReceiptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWarehouseReceiptCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateGetInventorySummaryQueryHandler() queries.GetInventorySummaryQueryHandler {
	return queries.NewGetInventorySummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryDetailQueryHandler() queries.GetInventoryDetailQueryHandler {
	return queries.NewGetInventoryDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderCategoriesQueryHandler() queries.GetOrderCategoriesQueryHandler {
	return queries.NewGetOrderCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoragePointBalancesQueryHandler() queries.GetStoragePointBalancesQueryHandler {
	return queries.NewGetStoragePointBalancesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStoragePointBalancesQueryHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncLoadingUoWFactory func() commands.LoadingUoW

func (f FuncLoadingUoWFactory) Create() commands.LoadingUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncReceiptUoWFactory func() commands.ReceiptUoW

func (f FuncReceiptUoWFactory) Create() commands.ReceiptUoW {
	return f()
}
