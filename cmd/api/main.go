package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/tienda-stock/internal/application/alerts"
	"github.com/tu-usuario/tienda-stock/internal/application/history"
	"github.com/tu-usuario/tienda-stock/internal/application/stock"
	"github.com/tu-usuario/tienda-stock/internal/infrastructure/mail"
	infrapdf "github.com/tu-usuario/tienda-stock/internal/infrastructure/pdf"
	"github.com/tu-usuario/tienda-stock/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/tienda-stock/internal/interfaces/http"
	"github.com/tu-usuario/tienda-stock/pkg/config"
	"github.com/tu-usuario/tienda-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	ledgerRepo := postgres.NewStockLedgerRepository(pool)
	settingsRepo := postgres.NewNotificationSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	movementUC := stock.NewMovementUseCase(txRunner, settingsRepo)
	adjustmentUC := stock.NewAdjustmentUseCase(movementUC)
	fulfillmentUC := stock.NewFulfillmentUseCase(movementUC)

	// Notificador de correo — solo se usa si SMTP_HOST está configurado.
	// Sin host, las alertas siguen disponibles vía API pero no se envían correos.
	var notifier alerts.AlertNotifier
	if cfg.SMTP.Host != "" {
		notifier = mail.NewGomailNotifier(cfg.SMTP)
	}

	aggregatorUC := alerts.NewAggregatorUseCase(productRepo, settingsRepo, notifier, log)
	settingsUC := alerts.NewSettingsUseCase(settingsRepo)

	reportGenerator := infrapdf.NewMarotoReportGenerator()
	historyUC := history.NewQueryUseCase(ledgerRepo, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AdjustmentUC:  adjustmentUC,
		FulfillmentUC: fulfillmentUC,
		AggregatorUC:  aggregatorUC,
		SettingsUC:    settingsUC,
		HistoryUC:     historyUC,
		ProductRepo:   productRepo,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
