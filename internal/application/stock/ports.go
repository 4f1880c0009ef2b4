package stock

import (
	"context"

	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la lectura con bloqueo, la
// escritura de cantidad+estado y la entrada del ledger sean una sola unidad
// atómica: o se aplican todas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		ledgerRepo repository.StockLedgerRepository,
	) error) error
}
