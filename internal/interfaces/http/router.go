package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-stock/internal/application/alerts"
	"github.com/tu-usuario/tienda-stock/internal/application/history"
	"github.com/tu-usuario/tienda-stock/internal/application/stock"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AdjustmentUC  *stock.AdjustmentUseCase
	FulfillmentUC *stock.FulfillmentUseCase
	AggregatorUC  *alerts.AggregatorUseCase
	SettingsUC    *alerts.SettingsUseCase
	HistoryUC     *history.QueryUseCase
	ProductRepo   repository.ProductRepository
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Pedidos: aplicación/restauración de stock por líneas (protegido)
	ordersHandler := NewOrdersHandler(deps.FulfillmentUC)
	protected.Post("/orders/:id/stock", ordersHandler.ApplyOrderStock)

	// Stock (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.AdjustmentUC, deps.ProductRepo)
	stockGroup.Post("/adjustments", RequireRole("admin"), stockHandler.AdjustStock)

	// Alertas (protegido)
	alertsHandler := NewAlertsHandler(deps.AggregatorUC)
	stockGroup.Get("/alerts", alertsHandler.GetActiveAlerts)
	stockGroup.Post("/alerts/dispatch", RequireRole("admin"), alertsHandler.DispatchAlertEmail)

	// Historial (protegido)
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	stockGroup.Get("/history", historyHandler.QueryHistory)
	stockGroup.Get("/history/statistics", historyHandler.GetStatistics)
	stockGroup.Get("/history/export", historyHandler.ExportHistory)

	// Configuración de notificaciones (protegido, solo admin para escribir)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settingsGroup := protected.Group("/settings")
	settingsGroup.Get("/notifications", settingsHandler.GetSettings)
	settingsGroup.Put("/notifications", RequireRole("admin"), settingsHandler.UpdateSettings)

	// Consulta puntual de stock de un producto (protegido)
	products := protected.Group("/products")
	products.Get("/:id/stock", stockHandler.GetProductStock)
}
