package repository

import "github.com/tu-usuario/tienda-stock/internal/domain/entity"

// ProductRepository define el puerto de persistencia para los campos de stock
// de productos. La cantidad solo se escribe vía UpdateStock, y siempre junto al
// estado derivado (misma unidad atómica).
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE)
	// para serializar mutaciones concurrentes sobre el mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock escribe cantidad y estado derivado en una sola sentencia.
	UpdateStock(id string, quantity int, status string) error
	// ListByStockStatus lista productos cuyo stock_status esté en statuses.
	ListByStockStatus(statuses []string) ([]*entity.Product, error)
}
