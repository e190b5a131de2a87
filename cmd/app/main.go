package main

import (
	"fmt"
	netHttp "net/http"
	"os"

	"parcelchain/cmd"
	httpin "parcelchain/internal/adapters/in/http"
	"parcelchain/internal/adapters/out/postgres/assetledger"
	"parcelchain/internal/adapters/out/postgres/carrierrepo"
	"parcelchain/internal/adapters/out/postgres/escrowrepo"
	"parcelchain/internal/adapters/out/postgres/parcelrepo"
	"parcelchain/internal/adapters/out/postgres/platformrepo"
	"parcelchain/internal/jobs"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := openDatabase(configs)
	migrateDatabase(db)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := jobs.NewJobManager(
		app.CreateGetCustodyAuditQueryHandler(),
		app.CreateGetUndeliveredParcelsQueryHandler(),
		app.CreateGetAllCarriersQueryHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps driver duplicate-key errors to gorm.ErrDuplicatedKey,
	// which the repositories rely on for conflict detection.
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&platformrepo.PlatformDTO{},
		&carrierrepo.CarrierDTO{},
		&parcelrepo.ParcelDTO{},
		&escrowrepo.EscrowDTO{},
		&assetledger.CustodyBalanceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(netHttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateInitializePlatformCommandHandler(),
		app.CreateUpdatePlatformPolicyCommandHandler(),
		app.CreateCreateCarrierCommandHandler(),
		app.CreateRegisterParcelCommandHandler(),
		app.CreateAcceptDeliveryCommandHandler(),
		app.CreateCreateEscrowCommandHandler(),
		app.CreateFundEscrowCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateGetParcelQueryHandler(),
		app.CreateGetUndeliveredParcelsQueryHandler(),
		app.CreateGetAllCarriersQueryHandler(),
		app.CreateGetCustodyAuditQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
