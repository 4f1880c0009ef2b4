package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, price, count_in_stock, min_stock_level, max_stock_level, stock_status, discontinued, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE)
// para serializar las mutaciones de stock sobre el mismo producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// UpdateStock escribe cantidad y estado derivado en una sola sentencia
// (la misma unidad atómica: el estado cacheado nunca queda obsoleto).
func (r *ProductRepo) UpdateStock(id string, quantity int, status string) error {
	query := `UPDATE products SET count_in_stock = $2, stock_status = $3, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity, status)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update stock: producto %s no existe", id)
	}
	return nil
}

// ListByStockStatus lista productos cuyo estado derivado esté en statuses.
func (r *ProductRepo) ListByStockStatus(statuses []string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE stock_status = ANY($1) ORDER BY count_in_stock ASC, name ASC`
	rows, err := r.q.Query(context.Background(), query, statuses)
	if err != nil {
		return nil, fmt.Errorf("list by stock status: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price,
		&p.CountInStock, &p.MinStockLevel, &p.MaxStockLevel,
		&p.StockStatus, &p.Discontinued, &p.CreatedAt, &p.UpdatedAt,
	)
}
