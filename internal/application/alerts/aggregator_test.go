package alerts_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/tienda-stock/internal/application/alerts"
	"github.com/tu-usuario/tienda-stock/internal/application/dto"
	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
	"github.com/tu-usuario/tienda-stock/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes del agregador: un repo de productos que filtra por estado cacheado,
// un repo de configuración con una sola fila y un notificador que graba los
// payloads que recibe.
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products []*entity.Product
	listErr  error
}

func (r *stubProductRepo) GetByID(id string) (*entity.Product, error)      { return nil, nil }
func (r *stubProductRepo) GetForUpdate(id string) (*entity.Product, error) { return nil, nil }
func (r *stubProductRepo) UpdateStock(id string, quantity int, status string) error {
	return nil
}

func (r *stubProductRepo) ListByStockStatus(statuses []string) ([]*entity.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*entity.Product
	for _, p := range r.products {
		for _, s := range statuses {
			if p.StockStatus == s {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

type stubSettingsRepo struct {
	settings *entity.NotificationSettings
	getErr   error
}

func (r *stubSettingsRepo) Get() (*entity.NotificationSettings, error) {
	return r.settings, r.getErr
}

func (r *stubSettingsRepo) Upsert(settings *entity.NotificationSettings) error {
	r.settings = settings
	return nil
}

type recordingNotifier struct {
	payloads []alerts.AlertEmailPayload
	sendErr  error
}

func (n *recordingNotifier) SendAlert(ctx context.Context, payload alerts.AlertEmailPayload) error {
	if n.sendErr != nil {
		return n.sendErr
	}
	n.payloads = append(n.payloads, payload)
	return nil
}

func productWithStatus(id string, quantity int, status string) *entity.Product {
	return &entity.Product{
		ID:           id,
		Name:         "Producto " + id,
		CountInStock: quantity,
		StockStatus:  status,
	}
}

// ── GetActiveAlerts ───────────────────────────────────────────────────────────

// TestGetActiveAlerts_SeveridadDerivadaDelEstado: productos en in_stock no
// aparecen; low_stock deriva warning y out_of_stock deriva critical.
func TestGetActiveAlerts_SeveridadDerivadaDelEstado(t *testing.T) {
	repo := &stubProductRepo{products: []*entity.Product{
		productWithStatus("p1", 50, entity.StockStatusInStock),
		productWithStatus("p2", 3, entity.StockStatusLowStock),
		productWithStatus("p3", 0, entity.StockStatusOutOfStock),
	}}
	uc := alerts.NewAggregatorUseCase(repo, &stubSettingsRepo{}, nil, logger.NewNop())

	summary, err := uc.GetActiveAlerts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.CriticalCount)
	assert.Equal(t, 1, summary.WarningCount)
	require.Len(t, summary.Items, 2, "solo productos en alerta, nunca in_stock")

	bySeverity := map[string]dto.StockAlertItem{}
	for _, item := range summary.Items {
		bySeverity[item.Severity] = item
	}
	assert.Equal(t, "p3", bySeverity[dto.AlertSeverityCritical].ProductID)
	assert.Equal(t, "p2", bySeverity[dto.AlertSeverityWarning].ProductID)
}

// TestGetActiveAlerts_SinConfiguracionUsaDefaults: sin fila de configuración
// el agregador usa los defaults (nivel de UI standard).
func TestGetActiveAlerts_SinConfiguracionUsaDefaults(t *testing.T) {
	uc := alerts.NewAggregatorUseCase(&stubProductRepo{}, &stubSettingsRepo{}, nil, logger.NewNop())

	summary, err := uc.GetActiveAlerts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.UILevelStandard, summary.UINotificationLevel)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.CriticalCount)
	assert.Zero(t, summary.WarningCount)
}

// TestGetActiveAlerts_ErrorDeLecturaSeMarca: un fallo del repo se propaga
// marcado como fallo de lectura (los endpoints lo mapean a 500, nunca a datos
// vacíos silenciosos).
func TestGetActiveAlerts_ErrorDeLecturaSeMarca(t *testing.T) {
	repo := &stubProductRepo{listErr: errors.New("conexión perdida")}
	uc := alerts.NewAggregatorUseCase(repo, &stubSettingsRepo{}, nil, logger.NewNop())

	_, err := uc.GetActiveAlerts(context.Background())
	assert.ErrorIs(t, err, domain.ErrReadFailure)
}

// ── DispatchAlertEmail ────────────────────────────────────────────────────────

func emailEnabledSettings() *entity.NotificationSettings {
	s := entity.DefaultNotificationSettings()
	s.EmailNotifications = true
	s.AdminEmail = "admin@tienda.local"
	return s
}

// TestDispatchAlertEmail_EnviaConItemsClasificados: con el canal habilitado y
// productos en alerta, el payload llega al notificador separado por severidad.
func TestDispatchAlertEmail_EnviaConItemsClasificados(t *testing.T) {
	repo := &stubProductRepo{products: []*entity.Product{
		productWithStatus("p1", 0, entity.StockStatusOutOfStock),
		productWithStatus("p2", 2, entity.StockStatusLowStock),
	}}
	notifier := &recordingNotifier{}
	uc := alerts.NewAggregatorUseCase(repo, &stubSettingsRepo{settings: emailEnabledSettings()}, notifier, logger.NewNop())

	sent, err := uc.DispatchAlertEmail(context.Background())

	require.NoError(t, err)
	assert.True(t, sent)
	require.Len(t, notifier.payloads, 1)
	payload := notifier.payloads[0]
	assert.Equal(t, "admin@tienda.local", payload.AdminEmail)
	require.Len(t, payload.CriticalItems, 1)
	require.Len(t, payload.WarningItems, 1)
	assert.Equal(t, "p1", payload.CriticalItems[0].ProductID)
	assert.Equal(t, "p2", payload.WarningItems[0].ProductID)
}

// TestDispatchAlertEmail_NoEnviaSiCanalDeshabilitado: email apagado o sin
// correo de admin → no se invoca el notificador y no es un error.
func TestDispatchAlertEmail_NoEnviaSiCanalDeshabilitado(t *testing.T) {
	repo := &stubProductRepo{products: []*entity.Product{
		productWithStatus("p1", 0, entity.StockStatusOutOfStock),
	}}
	notifier := &recordingNotifier{}

	// canal apagado
	uc := alerts.NewAggregatorUseCase(repo, &stubSettingsRepo{settings: entity.DefaultNotificationSettings()}, notifier, logger.NewNop())
	sent, err := uc.DispatchAlertEmail(context.Background())
	require.NoError(t, err)
	assert.False(t, sent)

	// canal encendido pero sin correo de destino
	settings := emailEnabledSettings()
	settings.AdminEmail = ""
	uc = alerts.NewAggregatorUseCase(repo, &stubSettingsRepo{settings: settings}, notifier, logger.NewNop())
	sent, err = uc.DispatchAlertEmail(context.Background())
	require.NoError(t, err)
	assert.False(t, sent)

	assert.Empty(t, notifier.payloads)
}

// TestDispatchAlertEmail_NoEnviaSinAlertas: catálogo sano → nada que enviar.
func TestDispatchAlertEmail_NoEnviaSinAlertas(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := alerts.NewAggregatorUseCase(&stubProductRepo{}, &stubSettingsRepo{settings: emailEnabledSettings()}, notifier, logger.NewNop())

	sent, err := uc.DispatchAlertEmail(context.Background())

	require.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, notifier.payloads)
}

// TestDispatchAlertEmail_FalloDeTransporteSeDevuelve: el error del SMTP se
// reporta al caller (no se traga) y sent es false.
func TestDispatchAlertEmail_FalloDeTransporteSeDevuelve(t *testing.T) {
	repo := &stubProductRepo{products: []*entity.Product{
		productWithStatus("p1", 0, entity.StockStatusOutOfStock),
	}}
	notifier := &recordingNotifier{sendErr: errors.New("smtp: connection refused")}
	uc := alerts.NewAggregatorUseCase(repo, &stubSettingsRepo{settings: emailEnabledSettings()}, notifier, logger.NewNop())

	sent, err := uc.DispatchAlertEmail(context.Background())

	assert.Error(t, err)
	assert.False(t, sent)
}
