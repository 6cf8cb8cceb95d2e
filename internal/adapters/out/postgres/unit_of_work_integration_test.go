package postgres_test

import (
	"context"
	"testing"
	"time"

	"recycling/internal/adapters/out/postgres"
	"recycling/internal/adapters/out/postgres/categoryrepo"
	"recycling/internal/adapters/out/postgres/inventoryrepo"
	"recycling/internal/adapters/out/postgres/receiptrepo"
	"recycling/internal/adapters/out/postgres/sequence"
	"recycling/internal/adapters/out/postgres/transportorderrepo"
	"recycling/internal/core/domain/model/inventory"
	"recycling/internal/core/domain/model/kernel"
	"recycling/internal/core/domain/model/receipt"
	"recycling/internal/core/domain/model/transportorder"
	"recycling/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&transportorderrepo.OrderDTO{},
		&inventoryrepo.RecordDTO{},
		&receiptrepo.ReceiptDTO{},
		&categoryrepo.CategoryDetailDTO{},
		&sequence.CounterDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE transport_orders, inventory_records, warehouse_receipts, transport_order_categories, number_counters").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrderAtStage(
	recyclerID kernel.UUID, stage transportorder.Stage,
) *transportorder.Order {
	weight, err := kernel.NewWeight(50)
	suite.Require().NoError(err)

	order, err := transportorder.NewTransportOrder(
		kernel.NewUUID(), "TO"+time.Now().UTC().Format("20060102")+"0001", recyclerID,
		"12 Harbor Rd", "Sorting Center 3",
		transportorder.Contacts{RecyclerName: "Wang"},
		weight, decimal.NewFromFloat(100.00))
	suite.Require().NoError(err)

	transitions := []func() error{
		func() error { return order.Accept(kernel.NewUUID()) },
		order.ConfirmPickupLocation,
		order.ArriveAtPickup,
		order.CompleteLoading,
		order.ConfirmDeliveryLocation,
		order.ArriveAtDelivery,
		func() error { return order.Complete(nil) },
	}
	for _, transition := range transitions {
		if order.Stage() == stage {
			break
		}
		suite.Require().NoError(transition())
	}
	suite.Require().Equal(stage, order.Stage())
	return order
}

func (suite *UnitOfWorkIntegrationTestSuite) seedInventory(
	recyclerID kernel.UUID, custody inventory.CustodyType, categories ...string,
) {
	for i, category := range categories {
		weight, err := kernel.NewWeight(float64(10 * (i + 1)))
		suite.Require().NoError(err)

		record, err := inventory.NewRecord(
			kernel.NewUUID(), recyclerID, kernel.NewUUID(),
			category, weight, decimal.NewFromInt(int64(25*(i+1))))
		suite.Require().NoError(err)

		repo := inventoryrepo.NewGormInventoryRepository(suite.db)
		suite.Require().NoError(repo.AddAll(context.Background(), []*inventory.Record{record}))
	}
	if custody != inventory.CustodyStoragePoint {
		err := suite.db.Exec(
			"UPDATE inventory_records SET custody = ? WHERE recycler_id = ?",
			custody.String(), recyclerID.Bytes()).Error
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) countByCustody(
	recyclerID kernel.UUID, custody inventory.CustodyType,
) int64 {
	var count int64
	err := suite.db.Model(&inventoryrepo.RecordDTO{}).
		Where("recycler_id = ? AND custody = ?", recyclerID.Bytes(), custody.String()).
		Count(&count).Error
	suite.Require().NoError(err)
	return count
}

// The loading transition and the custody move commit together.
func (suite *UnitOfWorkIntegrationTestSuite) TestLoadingTransitionAndCustodyMoveAreAtomic() {
	ctx := context.Background()
	recyclerID := kernel.NewUUID()
	order := suite.createOrderAtStage(recyclerID, transportorder.StageArrivedAtPickup)
	suite.seedInventory(recyclerID, inventory.CustodyStoragePoint, "paper", "plastic")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TransportOrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loadedStage := order.Stage()
	suite.Require().NoError(order.CompleteLoading())
	suite.Require().NoError(uow.TransportOrderRepository().Update(ctx, order, loadedStage))

	moved, err := uow.InventoryRepository().MoveAllToInTransit(ctx, recyclerID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), moved)

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(0), suite.countByCustody(recyclerID, inventory.CustodyStoragePoint))
	suite.Equal(int64(2), suite.countByCustody(recyclerID, inventory.CustodyInTransit))
}

// A rollback after the custody move leaves the ledger untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackRestoresCustody() {
	ctx := context.Background()
	recyclerID := kernel.NewUUID()
	suite.seedInventory(recyclerID, inventory.CustodyStoragePoint, "paper", "plastic")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	moved, err := uow.InventoryRepository().MoveAllToInTransit(ctx, recyclerID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), moved)

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(2), suite.countByCustody(recyclerID, inventory.CustodyStoragePoint))
	suite.Equal(int64(0), suite.countByCustody(recyclerID, inventory.CustodyInTransit))
}

// Receipt insert and inventory retirement commit together.
func (suite *UnitOfWorkIntegrationTestSuite) TestReceiptCreationRetiresInventoryAtomically() {
	ctx := context.Background()
	recyclerID := kernel.NewUUID()
	order := suite.createOrderAtStage(recyclerID, transportorder.StageCompleted)
	suite.seedInventory(recyclerID, inventory.CustodyInTransit, "paper", "plastic")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TransportOrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))

	weight, err := kernel.NewWeight(30)
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	number, err := uow.NumberSequence().Next(ctx, "WR", time.Now().UTC())
	suite.Require().NoError(err)

	rcpt, err := receipt.NewReceipt(
		kernel.NewUUID(), number, order.ID(), recyclerID, kernel.NewUUID(),
		weight, "paper 10kg, plastic 20kg", "")
	suite.Require().NoError(err)

	suite.Require().NoError(uow.ReceiptRepository().Add(ctx, rcpt))

	retired, err := uow.InventoryRepository().RetireForReceipt(ctx, recyclerID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), retired)

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(2), suite.countByCustody(recyclerID, inventory.CustodyWarehouse))

	loaded, err := suite.factory.Create().ReceiptRepository().GetByTransportOrder(ctx, order.ID())
	suite.Require().NoError(err)
	suite.Equal(number, loaded.Number())
}

// A second receipt for the same order hits the unique index and the whole
// transaction, including the inventory retirement, rolls back.
func (suite *UnitOfWorkIntegrationTestSuite) TestDuplicateReceiptRejectedAtomically() {
	ctx := context.Background()
	recyclerID := kernel.NewUUID()
	order := suite.createOrderAtStage(recyclerID, transportorder.StageCompleted)
	suite.seedInventory(recyclerID, inventory.CustodyInTransit, "paper")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TransportOrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))

	weight, err := kernel.NewWeight(10)
	suite.Require().NoError(err)

	first, err := receipt.NewReceipt(
		kernel.NewUUID(), "WR202501010001", order.ID(), recyclerID, kernel.NewUUID(),
		weight, "", "")
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ReceiptRepository().Add(ctx, first))
	_, err = uow.InventoryRepository().RetireForReceipt(ctx, recyclerID)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	second, err := receipt.NewReceipt(
		kernel.NewUUID(), "WR202501010002", order.ID(), recyclerID, kernel.NewUUID(),
		weight, "", "")
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.ReceiptRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrStateConflict)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(1), suite.countByCustody(recyclerID, inventory.CustodyWarehouse))
}

// An allocated number rolls back with its transaction instead of burning a
// slot in the day's sequence.
func (suite *UnitOfWorkIntegrationTestSuite) TestNumberAllocationRollsBackWithTransaction() {
	ctx := context.Background()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	number, err := uow.NumberSequence().Next(ctx, "TO", day)
	suite.Require().NoError(err)
	suite.Equal("TO202501010001", number)
	suite.Require().NoError(uow.Rollback(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	number, err = uow.NumberSequence().Next(ctx, "TO", day)
	suite.Require().NoError(err)
	suite.Equal("TO202501010001", number, "the rolled back allocation is reusable")
	suite.Require().NoError(uow.Commit(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
