// Package mail implementa el colaborador de envío de correo para alertas de
// stock. El core solo entrega el payload estructurado; el transporte SMTP
// vive aquí.
package mail

import (
	"context"
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/tu-usuario/tienda-stock/internal/application/alerts"
	"github.com/tu-usuario/tienda-stock/internal/application/dto"
	"github.com/tu-usuario/tienda-stock/pkg/config"
)

var _ alerts.AlertNotifier = (*GomailNotifier)(nil)

// GomailNotifier envía las alertas de stock por SMTP usando gomail.
type GomailNotifier struct {
	cfg config.SMTPConfig
}

// NewGomailNotifier construye el notificador con la configuración SMTP.
func NewGomailNotifier(cfg config.SMTPConfig) *GomailNotifier {
	return &GomailNotifier{cfg: cfg}
}

// SendAlert compone y envía el correo de alerta al administrador.
func (n *GomailNotifier) SendAlert(_ context.Context, payload alerts.AlertEmailPayload) error {
	if n.cfg.Host == "" {
		return fmt.Errorf("smtp no configurado")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", payload.AdminEmail)
	m.SetHeader("Subject", fmt.Sprintf("Alerta de stock: %d críticos, %d en aviso",
		len(payload.CriticalItems), len(payload.WarningItems)))
	m.SetBody("text/plain", buildBody(payload))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar correo de alerta: %w", err)
	}
	return nil
}

func buildBody(payload alerts.AlertEmailPayload) string {
	var b strings.Builder
	b.WriteString("Resumen de alertas de stock de la tienda.\n\n")
	writeSection(&b, "PRODUCTOS AGOTADOS", payload.CriticalItems)
	writeSection(&b, "PRODUCTOS CON STOCK BAJO", payload.WarningItems)
	b.WriteString("Revise el panel de inventario para registrar reposiciones.\n")
	return b.String()
}

func writeSection(b *strings.Builder, title string, items []dto.StockAlertItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s (%d):\n", title, len(items))
	for _, item := range items {
		fmt.Fprintf(b, "  - %s: %d unidades\n", item.ProductName, item.Quantity)
	}
	b.WriteString("\n")
}
