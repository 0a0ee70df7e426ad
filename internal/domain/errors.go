package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrItemNotFound       = errors.New("artículo no encontrado")
	ErrInvalidQuantity    = errors.New("cantidad inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrStorage            = errors.New("error de almacenamiento")
)

// InsufficientStockError detalla un rechazo por stock insuficiente:
// cuánto hay disponible, cuánto se pidió y el faltante.
type InsufficientStockError struct {
	ItemID    string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d", e.ItemID, e.Available, e.Requested)
}

// Is permite errors.Is contra el sentinel ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Shortfall devuelve cuántas unidades faltan para cubrir la solicitud.
func (e *InsufficientStockError) Shortfall() int64 {
	return e.Requested - e.Available
}

// StorageError envuelve una falla de infraestructura (desconexión, constraint,
// timeout de transacción) preservando la causa. La operación completa se
// revierte; no queda estado parcial observable.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("almacenamiento: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is permite errors.Is contra el sentinel ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// WrapStorage construye un StorageError, o devuelve nil si err es nil.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
