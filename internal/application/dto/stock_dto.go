package dto

import "github.com/shopspring/decimal"

// AdjustStockRequest body para POST /api/stock/adjustments.
// Exactamente uno de new_quantity o delta debe venir informado.
type AdjustStockRequest struct {
	ProductID   string `json:"product_id"`
	NewQuantity *int   `json:"new_quantity,omitempty"` // cantidad objetivo absoluta
	Delta       *int   `json:"delta,omitempty"`        // cambio directo con signo
	Reason      string `json:"reason"`
}

// MovementResultDTO resultado de una mutación de stock exitosa.
type MovementResultDTO struct {
	ProductID     string `json:"product_id"`
	NewQuantity   int    `json:"new_quantity"`
	NewStatus     string `json:"new_status"`
	LedgerEntryID int64  `json:"ledger_entry_id"`
}

// OrderLineRequest una línea de orden para el hook de fulfillment.
type OrderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderStockRequest body para POST /api/orders/:id/stock.
// direction: "decrement" (orden colocada) o "restore" (cancelación/reembolso).
type OrderStockRequest struct {
	Direction string             `json:"direction"`
	Lines     []OrderLineRequest `json:"lines"`
}

// OrderLineResultDTO resultado por línea del hook de fulfillment.
type OrderLineResultDTO struct {
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	NewQuantity int    `json:"new_quantity,omitempty"`
	NewStatus   string `json:"new_status,omitempty"`
	Error       string `json:"error,omitempty"`     // código del error (líneas fallidas)
	Available   int    `json:"available,omitempty"` // stock disponible al fallar por insuficiencia
}

// OrderStockResponse respuesta agregada: las líneas se procesan de forma
// independiente y el flujo de órdenes decide qué hacer con las fallidas.
type OrderStockResponse struct {
	OrderID   string               `json:"order_id"`
	Direction string               `json:"direction"`
	Succeeded []OrderLineResultDTO `json:"succeeded"`
	Failed    []OrderLineResultDTO `json:"failed"`
}

// ProductStockDTO vista de solo lectura del stock de un producto.
type ProductStockDTO struct {
	ProductID     string          `json:"product_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	CountInStock  int             `json:"count_in_stock"`
	MinStockLevel int             `json:"min_stock_level"`
	MaxStockLevel *int            `json:"max_stock_level,omitempty"`
	StockStatus   string          `json:"stock_status"`
	Discontinued  bool            `json:"discontinued"`
}
