package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"rental/cmd"
	rentalhttp "rental/internal/adapters/in/http"
	"rental/internal/adapters/out/inmem"
	"rental/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configs := cmd.LoadConfig()
	logger := newLogger(configs.LogLevel)

	store := inmem.NewStore()
	app := cmd.NewCompositionRoot(configs, store)

	if err := seedSampleData(&app); err != nil {
		log.Fatalf("Failed to seed sample data: %v", err)
	}

	if configs.DemoEnabled {
		if err := runDemo(&app); err != nil {
			log.Fatalf("Demo walkthrough failed: %v", err)
		}
	}

	jobManager := jobs.NewJobManager(
		app.CreateListOverdueRentalsQueryHandler(),
		configs.OverdueCheckSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, logger, configs.HTTPPort)
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = rentalhttp.NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(ctx.Request().Context(), slog.LevelInfo, "REQUEST",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
			)

			return nil
		},
	}))

	server := rentalhttp.NewServer(
		app.CreateAddVehicleCommandHandler(),
		app.CreateAddCustomerCommandHandler(),
		app.CreateRentVehicleCommandHandler(),
		app.CreateReturnVehicleCommandHandler(),
		app.CreateFindAvailableVehiclesQueryHandler(),
		app.CreateListVehiclesQueryHandler(),
		app.CreateListCustomersQueryHandler(),
		app.CreateFindCustomerByIDQueryHandler(),
		app.CreateListRentalsQueryHandler(),
		app.CreateGetRentalDetailsQueryHandler(),
		app.CreateListOverdueRentalsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
