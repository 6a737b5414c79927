package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=255"`
	Type      string          `json:"type" validate:"required,min=1,max=100"`
	Category  string          `json:"category" validate:"required,min=1,max=100"`
	ExpiresAt *time.Time      `json:"expires_at"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto. Price solo se
// acepta si el actor tiene permiso write-price (chequeo a nivel de campo).
type UpdateProductRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Type      *string          `json:"type" validate:"omitempty,min=1,max=100"`
	Category  *string          `json:"category" validate:"omitempty,min=1,max=100"`
	ExpiresAt *time.Time       `json:"expires_at"`
	Price     *decimal.Decimal `json:"price"`
}

// SetPriceRequest entrada para el contrato estrecho de precio.
type SetPriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// SetStockRequest entrada para el contrato estrecho de stock.
type SetStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

// RestockRequest entrada para reabastecer.
type RestockRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// RestockResponse stock resultante tras reabastecer.
type RestockResponse struct {
	ID       string `json:"id"`
	NewStock int    `json:"new_stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
