package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
	"github.com/tu-usuario/tienda-stock/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del clasificador puro de estado de stock.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_Tabla(t *testing.T) {
	cases := []struct {
		name         string
		quantity     int
		low          int
		critical     int
		discontinued bool
		want         string
	}{
		{"cantidad sobre el umbral", 10, 5, 2, false, entity.StockStatusInStock},
		{"umbral low inclusivo", 5, 5, 2, false, entity.StockStatusLowStock},
		{"justo encima del umbral", 6, 5, 2, false, entity.StockStatusInStock},
		{"cantidad uno", 1, 5, 2, false, entity.StockStatusLowStock},
		{"cantidad cero gana al umbral", 0, 5, 2, false, entity.StockStatusOutOfStock},
		{"cero con umbral cero", 0, 0, 0, false, entity.StockStatusOutOfStock},
		{"umbral cero y stock positivo", 3, 0, 0, false, entity.StockStatusInStock},
		{"discontinued gana sobre todo", 10, 5, 2, true, entity.StockStatusDiscontinued},
		{"discontinued con stock cero", 0, 5, 2, true, entity.StockStatusDiscontinued},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.Classify(tc.quantity, tc.low, tc.critical, tc.discontinued)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Mismo input dos veces produce el mismo output (función pura, sin estado).
func TestClassify_Idempotente(t *testing.T) {
	first := stock.Classify(3, 5, 2, false)
	second := stock.Classify(3, 5, 2, false)
	assert.Equal(t, first, second)
	assert.Equal(t, entity.StockStatusLowStock, first)
}

func TestEffectiveLowThreshold(t *testing.T) {
	assert.Equal(t, 8, stock.EffectiveLowThreshold(8, 5), "nivel propio definido tiene prioridad")
	assert.Equal(t, 5, stock.EffectiveLowThreshold(0, 5), "sin nivel propio cae al global")
}
