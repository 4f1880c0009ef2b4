package entity

import "time"

// Tipos de movimiento del ledger. Conjunto abierto: pueden aparecer tipos
// futuros (devoluciones, mermas) y el render/estadísticas deben degradar a una
// etiqueta genérica, nunca fallar.
const (
	MovementTypeSale       = "sale"       // venta u orden cancelada (delta con signo)
	MovementTypeAdjustment = "adjustment" // corrección manual de un administrador
)

// MovementTypeLabel devuelve la etiqueta legible de un tipo de movimiento,
// con rama por defecto para tipos desconocidos.
func MovementTypeLabel(movementType string) string {
	switch movementType {
	case MovementTypeSale:
		return "Venta"
	case MovementTypeAdjustment:
		return "Ajuste manual"
	default:
		return "Movimiento"
	}
}

// StockLedgerEntry es un registro inmutable del ledger de stock (append-only):
// un movimiento con signo por cada cambio de cantidad. Nunca se actualiza ni
// se borra después de creado.
// Invariante: QuantityAfter = QuantityBefore + QuantityChange, y QuantityAfter >= 0.
type StockLedgerEntry struct {
	ID             int64  // BIGSERIAL: el orden de inserción es real, sirve de tiebreak cronológico
	ProductID      string
	ProductName    string // snapshot desnormalizado para auditoría (sobrevive renombres/borrados)
	MovementType   string
	QuantityBefore int
	QuantityChange int // con signo: negativo venta, positivo reposición/reverso
	QuantityAfter  int
	Reason         string
	OrderID        *string // solo movimientos sale
	UserID         *string // solo ajustes manuales; nil = sistema
	CreatedAt      time.Time
}
