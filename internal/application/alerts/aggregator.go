package alerts

import (
	"context"

	"github.com/tu-usuario/tienda-stock/internal/application/dto"
	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
	"github.com/tu-usuario/tienda-stock/pkg/logger"
)

// AggregatorUseCase consulta el estado de stock actual contra la configuración
// de umbrales y produce los contadores y listas de productos en alerta.
// Consulta pura, sin efectos secundarios; confía en el stock_status cacheado
// que el motor de movimientos mantiene fresco.
type AggregatorUseCase struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.NotificationSettingsRepository
	notifier     AlertNotifier
	log          *logger.Logger
}

// NewAggregatorUseCase construye el agregador. notifier puede ser nil si el
// canal de correo no está configurado.
func NewAggregatorUseCase(
	productRepo repository.ProductRepository,
	settingsRepo repository.NotificationSettingsRepository,
	notifier AlertNotifier,
	log *logger.Logger,
) *AggregatorUseCase {
	return &AggregatorUseCase{
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		notifier:     notifier,
		log:          log,
	}
}

// GetActiveAlerts relee la configuración (sin cache entre requests) y escanea
// los productos con stock_status low_stock u out_of_stock. Los descontinuados
// quedan excluidos por construcción: su estado derivado es discontinued.
func (uc *AggregatorUseCase) GetActiveAlerts(ctx context.Context) (*dto.AlertSummary, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, domain.WrapReadFailure(err)
	}
	if settings == nil {
		settings = entity.DefaultNotificationSettings()
	}

	products, err := uc.productRepo.ListByStockStatus([]string{
		entity.StockStatusLowStock,
		entity.StockStatusOutOfStock,
	})
	if err != nil {
		return nil, domain.WrapReadFailure(err)
	}

	summary := &dto.AlertSummary{
		UINotificationLevel: settings.UINotificationLevel,
		Items:               make([]dto.StockAlertItem, 0, len(products)),
	}
	for _, p := range products {
		item := dto.StockAlertItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    p.CountInStock,
			Status:      p.StockStatus,
		}
		switch p.StockStatus {
		case entity.StockStatusOutOfStock:
			item.Severity = dto.AlertSeverityCritical
			summary.CriticalCount++
		case entity.StockStatusLowStock:
			item.Severity = dto.AlertSeverityWarning
			summary.WarningCount++
		default:
			continue
		}
		summary.Items = append(summary.Items, item)
	}
	return summary, nil
}

// DispatchAlertEmail calcula las alertas activas y, si el canal de correo está
// habilitado y hay productos en alerta, entrega el payload al notificador.
// Devuelve si se envió. Un fallo del transporte se registra y se devuelve,
// pero nunca afecta al stock ni al ledger (operación de solo lectura + envío).
func (uc *AggregatorUseCase) DispatchAlertEmail(ctx context.Context) (bool, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return false, domain.WrapReadFailure(err)
	}
	if settings == nil {
		settings = entity.DefaultNotificationSettings()
	}
	if !settings.EmailNotifications || settings.AdminEmail == "" || uc.notifier == nil {
		return false, nil
	}

	summary, err := uc.GetActiveAlerts(ctx)
	if err != nil {
		return false, err
	}
	if len(summary.Items) == 0 {
		return false, nil
	}

	payload := AlertEmailPayload{AdminEmail: settings.AdminEmail}
	for _, item := range summary.Items {
		if item.Severity == dto.AlertSeverityCritical {
			payload.CriticalItems = append(payload.CriticalItems, item)
		} else {
			payload.WarningItems = append(payload.WarningItems, item)
		}
	}

	if err := uc.notifier.SendAlert(ctx, payload); err != nil {
		uc.log.Error().Err(err).
			Int("critical", summary.CriticalCount).
			Int("warning", summary.WarningCount).
			Msg("envío de alerta de stock por correo")
		return false, err
	}
	uc.log.Info().
		Int("critical", summary.CriticalCount).
		Int("warning", summary.WarningCount).
		Str("admin_email", settings.AdminEmail).
		Msg("alerta de stock enviada")
	return true, nil
}
