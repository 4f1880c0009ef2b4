package repository

import "github.com/tu-usuario/tienda-stock/internal/domain/entity"

// NotificationSettingsRepository define el puerto de persistencia de la
// configuración singleton de notificaciones.
type NotificationSettingsRepository interface {
	// Get devuelve la configuración actual o nil si aún no existe.
	Get() (*entity.NotificationSettings, error)
	// Upsert crea o reemplaza la fila singleton.
	Upsert(settings *entity.NotificationSettings) error
}
