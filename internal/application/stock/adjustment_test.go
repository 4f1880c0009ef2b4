package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/tienda-stock/internal/application/stock"
	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
)

func buildAdjustmentUC(store *memStore) *stock.AdjustmentUseCase {
	return stock.NewAdjustmentUseCase(buildMovementUC(store))
}

// TestAdjustStock_CantidadAbsoluta: el admin fija la cantidad objetivo y el
// ajuste registra el delta derivado con su atribución.
func TestAdjustStock_CantidadAbsoluta(t *testing.T) {
	store := newMemStore()
	store.addProduct(testProduct("p1", 7, 5))
	uc := buildAdjustmentUC(store)

	res, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ProductID:   "p1",
		NewQuantity: intPtr(15),
		Reason:      "recuento físico de bodega",
		UserID:      "admin-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 15, res.NewQuantity)

	entries := store.ledgerEntries()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, entity.MovementTypeAdjustment, e.MovementType)
	assert.Equal(t, 8, e.QuantityChange, "delta derivado: 15 objetivo - 7 actuales")
	assert.Equal(t, "recuento físico de bodega", e.Reason)
	require.NotNil(t, e.UserID, "los ajustes manuales llevan el actor")
	assert.Equal(t, "admin-1", *e.UserID)
	assert.Nil(t, e.OrderID, "los ajustes no referencian órdenes")
}

// TestAdjustStock_DeltaDirecto aplica un cambio relativo con signo.
func TestAdjustStock_DeltaDirecto(t *testing.T) {
	store := newMemStore()
	store.addProduct(testProduct("p1", 7, 5))
	uc := buildAdjustmentUC(store)

	res, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ProductID: "p1",
		Delta:     intPtr(-3),
		Reason:    "merma por daño",
		UserID:    "admin-1",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, res.NewQuantity)
	assert.Equal(t, entity.StockStatusLowStock, res.NewStatus)
}

// ── Validación ────────────────────────────────────────────────────────────────

func TestAdjustStock_ErrorSinActor(t *testing.T) {
	store := newMemStore()
	store.addProduct(testProduct("p1", 7, 5))
	uc := buildAdjustmentUC(store)

	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ProductID:   "p1",
		NewQuantity: intPtr(10),
		Reason:      "sin firmar",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"un ajuste sin actor identificado no es auditable")
}

func TestAdjustStock_ErrorSinMotivo(t *testing.T) {
	store := newMemStore()
	store.addProduct(testProduct("p1", 7, 5))
	uc := buildAdjustmentUC(store)

	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ProductID:   "p1",
		NewQuantity: intPtr(10),
		UserID:      "admin-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestAdjustStock_ErrorSiAmbosModosONinguno: exactamente uno de cantidad
// objetivo o delta.
func TestAdjustStock_ErrorSiAmbosModosONinguno(t *testing.T) {
	store := newMemStore()
	store.addProduct(testProduct("p1", 7, 5))
	uc := buildAdjustmentUC(store)

	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ProductID:   "p1",
		NewQuantity: intPtr(10),
		Delta:       intPtr(3),
		Reason:      "ambiguo",
		UserID:      "admin-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ProductID: "p1",
		Reason:    "vacío",
		UserID:    "admin-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_ErrorSiObjetivoNegativo(t *testing.T) {
	store := newMemStore()
	store.addProduct(testProduct("p1", 7, 5))
	uc := buildAdjustmentUC(store)

	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ProductID:   "p1",
		NewQuantity: intPtr(-1),
		Reason:      "negativo",
		UserID:      "admin-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestAdjustStock_DeltaNegativoInsuficiente: un delta que dejaría la cantidad
// bajo cero falla igual que una venta.
func TestAdjustStock_DeltaNegativoInsuficiente(t *testing.T) {
	store := newMemStore()
	store.addProduct(testProduct("p1", 2, 5))
	uc := buildAdjustmentUC(store)

	_, err := uc.AdjustStock(context.Background(), stock.AdjustmentInput{
		ProductID: "p1",
		Delta:     intPtr(-5),
		Reason:    "merma",
		UserID:    "admin-1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, store.getProduct("p1").CountInStock)
}
