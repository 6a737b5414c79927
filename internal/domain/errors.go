package domain

import (
	"errors"
	"fmt"
	"time"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUsernameExists     = errors.New("el nombre de usuario ya existe")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrProductExpired     = errors.New("producto vencido")
)

// ProductNotFoundError identifica qué producto de una venta no existe.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("producto no encontrado: %s", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientStockError lleva el detalle disponible/solicitado que el
// cliente necesita para informar el faltante.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ExpiredProductError indica que el producto tiene la fecha de vencimiento en el pasado.
type ExpiredProductError struct {
	ProductName string
	ExpiredAt   time.Time
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("producto vencido: %s (venció el %s)",
		e.ProductName, e.ExpiredAt.Format("2006-01-02"))
}

func (e *ExpiredProductError) Unwrap() error { return ErrProductExpired }
