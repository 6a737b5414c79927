package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del almacén.
// Invariantes: Stock >= 0 siempre; Price >= 0. El stock solo lo decrementa
// el motor de ventas y solo lo incrementan restock/set-stock.
type Product struct {
	ID        string
	Name      string
	Type      string
	Category  string
	ExpiresAt *time.Time      // opcional; nil = sin política de vencimiento
	Price     decimal.Decimal // precio de venta, escala 2
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired indica si el producto está vencido respecto a now.
func (p *Product) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}
