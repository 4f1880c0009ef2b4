package alerts

import (
	"context"
	"time"

	"github.com/tu-usuario/tienda-stock/internal/application/dto"
	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de la configuración singleton de
// notificaciones. La primera lectura crea la fila con defaults.
type SettingsUseCase struct {
	settingsRepo repository.NotificationSettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(settingsRepo repository.NotificationSettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// GetSettings devuelve la configuración actual, creándola con defaults si no existe.
func (uc *SettingsUseCase) GetSettings(ctx context.Context) (*entity.NotificationSettings, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, domain.WrapReadFailure(err)
	}
	if settings != nil {
		return settings, nil
	}
	settings = entity.DefaultNotificationSettings()
	settings.UpdatedAt = time.Now()
	if err := uc.settingsRepo.Upsert(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings valida y reemplaza la configuración.
// Invariantes: umbrales no negativos, critical <= low, enums válidos y correo
// de admin presente cuando el canal de email está habilitado.
func (uc *SettingsUseCase) UpdateSettings(ctx context.Context, in dto.UpdateNotificationSettingsRequest) (*entity.NotificationSettings, error) {
	if in.GlobalLowStockThreshold < 0 || in.GlobalCriticalStockThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.GlobalCriticalStockThreshold > in.GlobalLowStockThreshold {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidFrequency(in.NotificationFrequency) || !entity.ValidUILevel(in.UINotificationLevel) {
		return nil, domain.ErrInvalidInput
	}
	if in.EmailNotifications && in.AdminEmail == "" {
		return nil, domain.ErrInvalidInput
	}

	settings := &entity.NotificationSettings{
		GlobalLowStockThreshold:      in.GlobalLowStockThreshold,
		GlobalCriticalStockThreshold: in.GlobalCriticalStockThreshold,
		EmailNotifications:           in.EmailNotifications,
		AdminEmail:                   in.AdminEmail,
		NotificationFrequency:        in.NotificationFrequency,
		UINotificationLevel:          in.UINotificationLevel,
		UpdatedAt:                    time.Now(),
	}
	if err := uc.settingsRepo.Upsert(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
