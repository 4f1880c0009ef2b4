package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-stock/internal/application/alerts"
	"github.com/tu-usuario/tienda-stock/internal/application/dto"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
)

// SettingsHandler expone la configuración de notificaciones de stock.
type SettingsHandler struct {
	settings *alerts.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(settings *alerts.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings godoc
// @Summary      Configuración de notificaciones
// @Description  Devuelve la configuración vigente; si nunca se guardó, crea y devuelve los valores por defecto.
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationSettingsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/settings/notifications [get]
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settings.GetSettings(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toSettingsResponse(settings))
}

// UpdateSettings godoc
// @Summary      Actualizar configuración de notificaciones
// @Description  Reemplaza la configuración completa. El umbral crítico no puede superar el umbral bajo.
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateNotificationSettingsRequest  true  "Nueva configuración"
// @Success      200  {object}  dto.NotificationSettingsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/settings/notifications [put]
func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var req dto.UpdateNotificationSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	settings, err := h.settings.UpdateSettings(c.Context(), req)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toSettingsResponse(settings))
}

func toSettingsResponse(s *entity.NotificationSettings) dto.NotificationSettingsResponse {
	return dto.NotificationSettingsResponse{
		GlobalLowStockThreshold:      s.GlobalLowStockThreshold,
		GlobalCriticalStockThreshold: s.GlobalCriticalStockThreshold,
		EmailNotifications:           s.EmailNotifications,
		AdminEmail:                   s.AdminEmail,
		NotificationFrequency:        s.NotificationFrequency,
		UINotificationLevel:          s.UINotificationLevel,
		UpdatedAt:                    s.UpdatedAt,
	}
}
