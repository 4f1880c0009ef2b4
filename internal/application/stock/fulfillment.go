package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
)

// Direcciones del hook de fulfillment.
const (
	DirectionDecrement = "decrement" // orden colocada: descuenta stock
	DirectionRestore   = "restore"   // cancelación/reembolso: repone stock
)

// OrderLine una línea de la orden (producto + cantidad pedida).
type OrderLine struct {
	ProductID string
	Quantity  int
}

// LineResult resultado por línea. Err != nil marca una línea fallida;
// Available acompaña los fallos por stock insuficiente.
type LineResult struct {
	ProductID   string
	Quantity    int
	NewQuantity int
	NewStatus   string
	Err         error
	Available   int
}

// OrderStockResult resultado agregado de aplicar las líneas de una orden.
type OrderStockResult struct {
	OrderID   string
	Direction string
	Succeeded []LineResult
	Failed    []LineResult
}

// FulfillmentUseCase aplica los movimientos de stock de una orden, línea por
// línea, como una operación lógica. Las líneas son independientes: un fallo en
// una (p. ej. stock insuficiente, que el checkout debió validar pero se maneja
// defensivamente) no revierte las ya aplicadas. El flujo de órdenes recibe el
// resultado completo y decide: cancelar, avisar a soporte o continuar parcial.
// Ningún fallo se descarta en silencio.
type FulfillmentUseCase struct {
	movements *MovementUseCase
}

// NewFulfillmentUseCase construye el caso de uso.
func NewFulfillmentUseCase(movements *MovementUseCase) *FulfillmentUseCase {
	return &FulfillmentUseCase{movements: movements}
}

// ApplyOrderLines descuenta (decrement) o repone (restore) el stock de cada
// línea invocando el motor de movimientos con type=sale y la orden como
// referencia. El caller es responsable de invocarlo exactamente una vez por
// transición de estado de la orden.
func (uc *FulfillmentUseCase) ApplyOrderLines(
	ctx context.Context,
	orderID string,
	lines []OrderLine,
	direction string,
) (*OrderStockResult, error) {
	if orderID == "" || len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if direction != DirectionDecrement && direction != DirectionRestore {
		return nil, domain.ErrInvalidInput
	}

	result := &OrderStockResult{OrderID: orderID, Direction: direction}
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			result.Failed = append(result.Failed, LineResult{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Err:       domain.ErrInvalidInput,
			})
			continue
		}

		delta := -line.Quantity
		if direction == DirectionRestore {
			delta = line.Quantity
		}

		res, err := uc.movements.ApplyMovement(ctx, MovementInput{
			ProductID: line.ProductID,
			Delta:     delta,
			Type:      entity.MovementTypeSale,
			Reason:    fmt.Sprintf("Order %s", orderID),
			OrderID:   orderID,
		})
		if err != nil {
			failed := LineResult{ProductID: line.ProductID, Quantity: line.Quantity, Err: err}
			var insufficient *domain.InsufficientStockError
			if errors.As(err, &insufficient) {
				failed.Available = insufficient.Available
			}
			result.Failed = append(result.Failed, failed)
			continue
		}
		result.Succeeded = append(result.Succeeded, LineResult{
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			NewQuantity: res.NewQuantity,
			NewStatus:   res.NewStatus,
		})
	}
	return result, nil
}
