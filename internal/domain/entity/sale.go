package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un registro inmutable del libro de ventas. Los campos ProductName,
// ProductType, Category y UnitPrice son un snapshot del producto al momento de
// la venta: ediciones posteriores del producto no los alteran (por eso no hay
// foreign key al producto).
type Sale struct {
	ID          string
	ProductName string
	ProductType string
	Category    string
	UnitPrice   decimal.Decimal
	Quantity    int
	Total       decimal.Decimal // UnitPrice * Quantity
	SoldBy      string          // username del actor; metadato opcional, puede ser vacío
	SoldAt      time.Time       // asignado por el servidor al crear
}
