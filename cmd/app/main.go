package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"recycling/cmd"
	httpadapter "recycling/internal/adapters/in/http"
	"recycling/internal/adapters/out/kafka"
	"recycling/internal/adapters/out/postgres/categoryrepo"
	"recycling/internal/adapters/out/postgres/inventoryrepo"
	"recycling/internal/adapters/out/postgres/receiptrepo"
	"recycling/internal/adapters/out/postgres/sequence"
	"recycling/internal/adapters/out/postgres/transportorderrepo"
	"recycling/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	notifier := createNotifier(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaNotificationsTopic: goDotEnvVariable("KAFKA_NOTIFICATIONS_TOPIC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&transportorderrepo.OrderDTO{},
		&inventoryrepo.RecordDTO{},
		&receiptrepo.ReceiptDTO{},
		&categoryrepo.CategoryDetailDTO{},
		&sequence.CounterDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func createNotifier(configs cmd.Config, logger *slog.Logger) ports.Notifier {
	if configs.KafkaHost == "" {
		return kafka.NoopNotifier{}
	}
	return kafka.NewNotifier(configs.KafkaHost, configs.KafkaNotificationsTopic, logger)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateTransportOrderCommandHandler(),
		app.CreateAcceptTransportOrderCommandHandler(),
		app.CreateConfirmPickupLocationCommandHandler(),
		app.CreateArriveAtPickupCommandHandler(),
		app.CreateCompleteLoadingCommandHandler(),
		app.CreateConfirmDeliveryLocationCommandHandler(),
		app.CreateArriveAtDeliveryCommandHandler(),
		app.CreateCompleteTransportOrderCommandHandler(),
		app.CreateRateTransportOrderCommandHandler(),
		app.CreateAddStorageInventoryCommandHandler(),
		app.CreateRecordCategoryDetailsCommandHandler(),
		app.CreateCreateWarehouseReceiptCommandHandler(),
		app.CreateGetInventorySummaryQueryHandler(),
		app.CreateGetInventoryDetailQueryHandler(),
		app.CreateGetOrderCategoriesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
