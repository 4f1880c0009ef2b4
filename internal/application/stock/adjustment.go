package stock

import (
	"context"

	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
)

// AdjustmentInput entrada para una corrección manual de stock.
// Exactamente uno de NewQuantity (objetivo absoluto) o Delta (cambio directo)
// debe venir informado.
type AdjustmentInput struct {
	ProductID   string
	NewQuantity *int
	Delta       *int
	Reason      string
	UserID      string
}

// AdjustmentUseCase corrección de stock iniciada por un administrador.
// Exige motivo no vacío y actor identificado (atribución de auditoría) y
// delega por completo en el motor de movimientos con type=adjustment.
type AdjustmentUseCase struct {
	movements *MovementUseCase
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(movements *MovementUseCase) *AdjustmentUseCase {
	return &AdjustmentUseCase{movements: movements}
}

// AdjustStock valida la entrada y aplica el ajuste. La conversión de cantidad
// absoluta a delta ocurre dentro de la transacción del motor, bajo el bloqueo
// de fila del producto.
func (uc *AdjustmentUseCase) AdjustStock(ctx context.Context, input AdjustmentInput) (*MovementResult, error) {
	if input.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if input.ProductID == "" || input.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	// Uno y solo uno de los dos modos.
	if (input.NewQuantity == nil) == (input.Delta == nil) {
		return nil, domain.ErrInvalidInput
	}
	if input.NewQuantity != nil && *input.NewQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	movement := MovementInput{
		ProductID:      input.ProductID,
		Type:           entity.MovementTypeAdjustment,
		Reason:         input.Reason,
		UserID:         input.UserID,
		TargetQuantity: input.NewQuantity,
	}
	if input.Delta != nil {
		movement.Delta = *input.Delta
	}
	return uc.movements.ApplyMovement(ctx, movement)
}
