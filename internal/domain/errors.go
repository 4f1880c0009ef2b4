package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia")
	ErrReadFailure         = errors.New("fallo de lectura en almacenamiento")
)

// InsufficientStockError lleva la cantidad disponible para que el checkout
// pueda mostrar "stock insuficiente: N disponibles". Envuelve ErrInsufficientStock.
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: %d disponibles, %d solicitados",
		e.ProductID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// WrapReadFailure marca un error de lectura como ErrReadFailure conservando la causa.
func WrapReadFailure(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrReadFailure, err)
}
