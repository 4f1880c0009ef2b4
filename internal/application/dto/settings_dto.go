package dto

import "time"

// NotificationSettingsResponse vista de la configuración de notificaciones.
type NotificationSettingsResponse struct {
	GlobalLowStockThreshold      int       `json:"global_low_stock_threshold"`
	GlobalCriticalStockThreshold int       `json:"global_critical_stock_threshold"`
	EmailNotifications           bool      `json:"email_notifications"`
	AdminEmail                   string    `json:"admin_email"`
	NotificationFrequency        string    `json:"notification_frequency"`
	UINotificationLevel          string    `json:"ui_notification_level"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

// UpdateNotificationSettingsRequest body para PUT /api/settings/notifications.
// Reemplaza la configuración completa (el formulario del admin envía todos los campos).
type UpdateNotificationSettingsRequest struct {
	GlobalLowStockThreshold      int    `json:"global_low_stock_threshold"`
	GlobalCriticalStockThreshold int    `json:"global_critical_stock_threshold"`
	EmailNotifications           bool   `json:"email_notifications"`
	AdminEmail                   string `json:"admin_email"`
	NotificationFrequency        string `json:"notification_frequency"`
	UINotificationLevel          string `json:"ui_notification_level"`
}
