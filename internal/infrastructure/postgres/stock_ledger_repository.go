package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
)

var _ repository.StockLedgerRepository = (*StockLedgerRepo)(nil)

// StockLedgerRepo implementación del ledger append-only sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: no hay UPDATE ni DELETE.
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLedgerRepository(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

// Create persiste una entrada del ledger y asigna el ID de la secuencia.
func (r *StockLedgerRepo) Create(entry *entity.StockLedgerEntry) error {
	query := `
		INSERT INTO stock_ledger (product_id, product_name, movement_type, quantity_before, quantity_change, quantity_after, reason, order_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		entry.ProductID, entry.ProductName, entry.MovementType,
		entry.QuantityBefore, entry.QuantityChange, entry.QuantityAfter,
		entry.Reason, entry.OrderID, entry.UserID, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// List devuelve entradas en orden cronológico inverso estricto
// (created_at DESC, id DESC: el id secuencial desempata inserciones con el mismo timestamp).
func (r *StockLedgerRepo) List(filter repository.LedgerFilter, limit, offset int) ([]*entity.StockLedgerEntry, error) {
	query := `
		SELECT id, product_id, product_name, movement_type, quantity_before, quantity_change, quantity_after, reason, order_id, user_id, created_at
		FROM stock_ledger`
	where, args := buildLedgerFilter(filter)
	query += where
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockLedgerEntry
	for rows.Next() {
		var e entity.StockLedgerEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.ProductName, &e.MovementType,
			&e.QuantityBefore, &e.QuantityChange, &e.QuantityAfter,
			&e.Reason, &e.OrderID, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Count cuenta las entradas que cumplen el filtro.
func (r *StockLedgerRepo) Count(filter repository.LedgerFilter) (int, error) {
	query := `SELECT count(*) FROM stock_ledger`
	where, args := buildLedgerFilter(filter)
	query += where

	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count ledger: %w", err)
	}
	return total, nil
}

// StatsByType agrega número de movimientos y suma neta de cantidades por tipo.
func (r *StockLedgerRepo) StatsByType(since *time.Time) ([]repository.MovementTypeStat, error) {
	query := `
		SELECT movement_type, count(*), coalesce(sum(quantity_change), 0)
		FROM stock_ledger`
	var args []any
	if since != nil {
		query += ` WHERE created_at >= $1`
		args = append(args, *since)
	}
	query += ` GROUP BY movement_type ORDER BY movement_type`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("stats by type: %w", err)
	}
	defer rows.Close()

	var stats []repository.MovementTypeStat
	for rows.Next() {
		var s repository.MovementTypeStat
		if err := rows.Scan(&s.Type, &s.Count, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// buildLedgerFilter construye la cláusula WHERE según los filtros no vacíos.
func buildLedgerFilter(filter repository.LedgerFilter) (string, []any) {
	var (
		where string
		args  []any
	)
	appendCond := func(cond string, value any) {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		args = append(args, value)
		where += fmt.Sprintf(cond, len(args))
	}
	if filter.MovementType != "" {
		appendCond("movement_type = $%d", filter.MovementType)
	}
	if filter.ProductID != "" {
		appendCond("product_id = $%d", filter.ProductID)
	}
	return where, args
}
