package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-stock/internal/application/alerts"
)

// AlertsHandler maneja la consulta de alertas de stock y el disparo del
// correo al administrador (protegido).
type AlertsHandler struct {
	aggregator *alerts.AggregatorUseCase
}

// NewAlertsHandler construye el handler.
func NewAlertsHandler(aggregator *alerts.AggregatorUseCase) *AlertsHandler {
	return &AlertsHandler{aggregator: aggregator}
}

// GetActiveAlerts godoc
// @Summary      Alertas de stock activas
// @Description  Contadores y lista de productos en low_stock (warning) y out_of_stock (critical). Los descontinuados no generan alertas.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertSummary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/alerts [get]
func (h *AlertsHandler) GetActiveAlerts(c *fiber.Ctx) error {
	summary, err := h.aggregator.GetActiveAlerts(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(summary)
}

// DispatchAlertEmail godoc
// @Summary      Enviar alertas de stock por correo
// @Description  Entrega el resumen de alertas al canal de correo si está habilitado en la configuración y hay productos en alerta.
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/alerts/dispatch [post]
func (h *AlertsHandler) DispatchAlertEmail(c *fiber.Ctx) error {
	sent, err := h.aggregator.DispatchAlertEmail(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"sent": sent})
}
