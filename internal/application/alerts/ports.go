package alerts

import (
	"context"

	"github.com/tu-usuario/tienda-stock/internal/application/dto"
)

// AlertEmailPayload payload estructurado que se entrega al colaborador de
// envío de correo. El transporte SMTP real es responsabilidad del adaptador.
type AlertEmailPayload struct {
	AdminEmail    string
	CriticalItems []dto.StockAlertItem
	WarningItems  []dto.StockAlertItem
}

// AlertNotifier puerto de salida hacia el canal de correo. Las
// implementaciones pueden soportar otros canales en el futuro.
type AlertNotifier interface {
	SendAlert(ctx context.Context, payload AlertEmailPayload) error
}
