package repository

import (
	"time"

	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
)

// LedgerFilter filtros opcionales para listar/contar entradas del ledger.
// Campos vacíos = sin filtro.
type LedgerFilter struct {
	MovementType string
	ProductID    string
}

// MovementTypeStat agregado por tipo de movimiento: número de movimientos y
// suma neta de las cantidades con signo (ventas netas negativas, ajustes
// pueden ser netos positivos o negativos).
type MovementTypeStat struct {
	Type          string
	Count         int64
	TotalQuantity int64
}

// StockLedgerRepository define el puerto de persistencia del ledger de stock.
// Append-only: solo Create escribe; no existen Update ni Delete.
type StockLedgerRepository interface {
	// Create inserta la entrada y asigna entry.ID (secuencia de la BD).
	Create(entry *entity.StockLedgerEntry) error
	// List devuelve entradas en orden estrictamente cronológico inverso
	// (created_at DESC, id DESC) con paginación por offset.
	List(filter LedgerFilter, limit, offset int) ([]*entity.StockLedgerEntry, error)
	Count(filter LedgerFilter) (int, error)
	// StatsByType agrega movimientos por tipo desde la fecha dada (nil = todo el historial).
	StatsByType(since *time.Time) ([]MovementTypeStat, error)
}
