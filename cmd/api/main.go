package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	datasetCsv "crash-dashboard-service/internal/dataset/adapters/csvfile"
	datasetHttp "crash-dashboard-service/internal/dataset/adapters/http/fiber"
	datasetPg "crash-dashboard-service/internal/dataset/adapters/postgres"
	datasetPorts "crash-dashboard-service/internal/dataset/core/ports"
	datasetUsecase "crash-dashboard-service/internal/dataset/core/usecase"

	reportHttp "crash-dashboard-service/internal/report/adapters/http/fiber"
	reportUsecase "crash-dashboard-service/internal/report/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "crash-dashboard-service/docs"
)

// @title Crash Dashboard API
// @version 1.0
// @description Filter-and-aggregate API over a static traffic-crash dataset.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	cfg := loadConfig()

	// Crash source
	var source datasetPorts.CrashSourcePort
	switch cfg.Source {
	case "csv":
		source = datasetCsv.NewSource(cfg.CSVPath)
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal("POSTGRES_DSN is not set")
		}
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatalf("failed to ping postgres: %v", err)
		}
		source = datasetPg.NewSource(datasetPg.NewSQLDB(db), cfg.PostgresTable)
	default:
		log.Fatalf("unknown CRASH_SOURCE %q (want csv or postgres)", cfg.Source)
	}

	// The dataset loads exactly once; without it there is no service.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 2*time.Minute)
	ds, err := datasetUsecase.NewLoadDatasetUseCase(source).Execute(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatalf("failed to load crash dataset: %v", err)
	}
	log.Printf("loaded %d crash records (%d boroughs, %d years, %d vehicle types, %d factors)",
		len(ds.Records), len(ds.Options.Boroughs), len(ds.Options.Years),
		len(ds.Options.VehicleTypes), len(ds.Options.ContributingFactors))

	// Usecases
	filtersUC := datasetUsecase.NewGetFilterOptionsUseCase(ds)
	reportUC := reportUsecase.NewGenerateReportUseCase(ds)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{
		AppName: "crash-dashboard-service",
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "crash-dashboard-service",
			"records": len(ds.Records),
		})
	})

	filtersHandler := datasetHttp.NewFiltersHandler(filtersUC)
	app.Get("/filters", filtersHandler.GetFilterOptions)

	reportHandler := reportHttp.NewReportHandler(reportUC)
	app.Post("/report", reportHandler.GenerateReport)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on :%s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}

type config struct {
	Port          string
	Source        string
	CSVPath       string
	PostgresDSN   string
	PostgresTable string
}

func loadConfig() config {
	return config{
		Port:          getEnv("PORT", "8080"),
		Source:        getEnv("CRASH_SOURCE", "csv"),
		CSVPath:       getEnv("CRASH_CSV_PATH", "crash_person_merged.csv"),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),
		PostgresTable: getEnv("CRASH_TABLE", "crashes"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
