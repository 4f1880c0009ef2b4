package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
)

var _ repository.NotificationSettingsRepository = (*NotificationSettingsRepo)(nil)

// NotificationSettingsRepo persistencia de la fila singleton de configuración
// (id fijo = 1, usable con pool o tx).
type NotificationSettingsRepo struct {
	q Querier
}

// NewNotificationSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNotificationSettingsRepository(q Querier) *NotificationSettingsRepo {
	return &NotificationSettingsRepo{q: q}
}

// Get devuelve la configuración actual o nil si aún no existe.
func (r *NotificationSettingsRepo) Get() (*entity.NotificationSettings, error) {
	query := `
		SELECT global_low_stock_threshold, global_critical_stock_threshold, email_notifications, admin_email, notification_frequency, ui_notification_level, updated_at
		FROM notification_settings WHERE id = 1`
	var s entity.NotificationSettings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.GlobalLowStockThreshold, &s.GlobalCriticalStockThreshold,
		&s.EmailNotifications, &s.AdminEmail,
		&s.NotificationFrequency, &s.UINotificationLevel, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification settings: %w", err)
	}
	return &s, nil
}

// Upsert crea o reemplaza la fila singleton.
func (r *NotificationSettingsRepo) Upsert(settings *entity.NotificationSettings) error {
	query := `
		INSERT INTO notification_settings (id, global_low_stock_threshold, global_critical_stock_threshold, email_notifications, admin_email, notification_frequency, ui_notification_level, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id)
		DO UPDATE SET
			global_low_stock_threshold = EXCLUDED.global_low_stock_threshold,
			global_critical_stock_threshold = EXCLUDED.global_critical_stock_threshold,
			email_notifications = EXCLUDED.email_notifications,
			admin_email = EXCLUDED.admin_email,
			notification_frequency = EXCLUDED.notification_frequency,
			ui_notification_level = EXCLUDED.ui_notification_level,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		settings.GlobalLowStockThreshold, settings.GlobalCriticalStockThreshold,
		settings.EmailNotifications, settings.AdminEmail,
		settings.NotificationFrequency, settings.UINotificationLevel,
	)
	if err != nil {
		return fmt.Errorf("upsert notification settings: %w", err)
	}
	return nil
}
