package stock

import (
	"context"
	"errors"
	"time"

	"github.com/tu-usuario/tienda-stock/internal/domain"
	"github.com/tu-usuario/tienda-stock/internal/domain/entity"
	"github.com/tu-usuario/tienda-stock/internal/domain/repository"
	domstock "github.com/tu-usuario/tienda-stock/internal/domain/stock"
)

// maxConflictRetries reintentos ante fallos de serialización antes de
// devolver ErrConcurrencyConflict al caller.
const maxConflictRetries = 3

// MovementUseCase aplica movimientos de stock de forma transaccional: es el
// único camino por el que cambia CountInStock. Bloquea la fila del producto
// (SELECT FOR UPDATE), valida que la cantidad resultante no sea negativa,
// recalcula el estado derivado y escribe exactamente una entrada del ledger,
// todo en la misma transacción.
type MovementUseCase struct {
	txRunner     TxRunner
	settingsRepo repository.NotificationSettingsRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(txRunner TxRunner, settingsRepo repository.NotificationSettingsRepository) *MovementUseCase {
	return &MovementUseCase{txRunner: txRunner, settingsRepo: settingsRepo}
}

// MovementInput entrada para aplicar un movimiento de stock.
// Delta es el cambio con signo; si TargetQuantity viene informado, el delta se
// calcula contra la cantidad actual dentro de la transacción (bajo el bloqueo
// de fila, así la conversión absoluta→delta no puede correr una carrera).
type MovementInput struct {
	ProductID      string
	Delta          int
	TargetQuantity *int
	Type           string
	Reason         string
	UserID         string // actor admin en ajustes; vacío = sistema
	OrderID        string // solo movimientos sale
}

// MovementResult resultado de un movimiento aplicado.
type MovementResult struct {
	ProductID     string
	NewQuantity   int
	NewStatus     string
	LedgerEntryID int64
}

// ApplyMovement valida la entrada, ejecuta la mutación atómica y reintenta
// ante conflictos de serialización (bounded). Cero escrituras en cualquier
// camino de fallo: ni cantidad parcial ni entradas huérfanas del ledger.
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if input.ProductID == "" || input.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.TargetQuantity == nil && input.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.TargetQuantity != nil && *input.TargetQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	// Umbrales globales: fallback al nivel por producto cuando no está definido.
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultNotificationSettings()
	}

	var result *MovementResult
	for attempt := 0; ; attempt++ {
		err = uc.txRunner.Run(ctx, func(
			productRepo repository.ProductRepository,
			ledgerRepo repository.StockLedgerRepository,
		) error {
			res, txErr := uc.applyInTx(productRepo, ledgerRepo, settings, input)
			if txErr != nil {
				return txErr
			}
			result = res
			return nil
		})
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, domain.ErrConcurrencyConflict) || attempt+1 >= maxConflictRetries {
			return nil, err
		}
	}
}

// applyInTx ejecuta la sección crítica con la fila del producto bloqueada.
func (uc *MovementUseCase) applyInTx(
	productRepo repository.ProductRepository,
	ledgerRepo repository.StockLedgerRepository,
	settings *entity.NotificationSettings,
	input MovementInput,
) (*MovementResult, error) {
	product, err := productRepo.GetForUpdate(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	before := product.CountInStock
	delta := input.Delta
	if input.TargetQuantity != nil {
		delta = *input.TargetQuantity - before
	}
	after := before + delta
	if after < 0 {
		return nil, &domain.InsufficientStockError{
			ProductID: input.ProductID,
			Available: before,
			Requested: -delta,
		}
	}

	low := domstock.EffectiveLowThreshold(product.MinStockLevel, settings.GlobalLowStockThreshold)
	status := domstock.Classify(after, low, settings.GlobalCriticalStockThreshold, product.Discontinued)

	if err := productRepo.UpdateStock(input.ProductID, after, status); err != nil {
		return nil, err
	}

	entry := &entity.StockLedgerEntry{
		ProductID:      input.ProductID,
		ProductName:    product.Name,
		MovementType:   input.Type,
		QuantityBefore: before,
		QuantityChange: delta,
		QuantityAfter:  after,
		Reason:         input.Reason,
		CreatedAt:      time.Now(),
	}
	if input.OrderID != "" {
		orderID := input.OrderID
		entry.OrderID = &orderID
	}
	if input.UserID != "" {
		userID := input.UserID
		entry.UserID = &userID
	}
	if err := ledgerRepo.Create(entry); err != nil {
		return nil, err
	}

	return &MovementResult{
		ProductID:     input.ProductID,
		NewQuantity:   after,
		NewStatus:     status,
		LedgerEntryID: entry.ID,
	}, nil
}
