package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock derivados (cacheados en products.stock_status).
const (
	StockStatusInStock      = "in_stock"
	StockStatusLowStock     = "low_stock"
	StockStatusOutOfStock   = "out_of_stock"
	StockStatusDiscontinued = "discontinued"
)

// Product representa un producto de la tienda con sus campos de stock.
// CountInStock y StockStatus solo cambian a través del motor de movimientos:
// ningún otro componente escribe la cantidad directamente (el cache de estado
// se queda obsoleto si alguien lo hace).
type Product struct {
	ID            string
	SKU           string
	Name          string
	Description   string
	Price         decimal.Decimal // precio de venta
	CountInStock  int             // cantidad disponible, nunca negativa
	MinStockLevel int             // umbral "low" por producto; 0 = usar umbral global
	MaxStockLevel *int            // capacidad de referencia, solo informativo
	StockStatus   string          // derivado, recalculado en cada mutación
	Discontinued  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
