package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/tienda-stock/internal/application/stock"
	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Los fallos de serialización o deadlock se traducen a
// domain.ErrConcurrencyConflict para que el caller pueda reintentar.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	ledgerRepo repository.StockLedgerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	ledgerRepo := NewStockLedgerRepository(tx)

	if err := fn(productRepo, ledgerRepo); err != nil {
		return translateConflict(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateConflict(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// translateConflict mapea SQLSTATE 40001 (serialization_failure) y 40P01
// (deadlock_detected) a domain.ErrConcurrencyConflict.
func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
		return fmt.Errorf("%w: %v", domain.ErrConcurrencyConflict, err)
	}
	return err
}
