package dto

import "time"

// HistoryQuery parámetros de GET /api/stock/history.
type HistoryQuery struct {
	Page         int    `query:"page"`
	PageSize     int    `query:"page_size" validate:"min=1,max=100"`
	MovementType string `query:"type"`
	ProductID    string `query:"product_id"`
}

// DefaultPage aplica valores por defecto si Page/PageSize son cero.
func (q *HistoryQuery) DefaultPage() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = 20
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}
}

// LedgerEntryDTO una entrada del ledger para el historial del admin.
type LedgerEntryDTO struct {
	ID             int64     `json:"id"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	MovementType   string    `json:"movement_type"`
	TypeLabel      string    `json:"type_label"` // etiqueta legible, genérica para tipos desconocidos
	QuantityBefore int       `json:"quantity_before"`
	QuantityChange int       `json:"quantity_change"`
	QuantityAfter  int       `json:"quantity_after"`
	Reason         string    `json:"reason"`
	OrderID        *string   `json:"order_id,omitempty"`
	UserID         *string   `json:"user_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// HistoryPage página del historial de movimientos.
type HistoryPage struct {
	Entries    []LedgerEntryDTO `json:"entries"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// MovementTypeStatDTO estadística agregada por tipo de movimiento.
type MovementTypeStatDTO struct {
	Type          string `json:"type"`
	Label         string `json:"label"`
	Count         int64  `json:"count"`
	TotalQuantity int64  `json:"total_quantity"` // suma neta con signo
}

// MovementStats respuesta de GET /api/stock/history/statistics.
type MovementStats struct {
	TotalMovements int64                 `json:"total_movements"`
	ByType         []MovementTypeStatDTO `json:"by_type"`
}
