package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest un renglón de la venta: producto y cantidad solicitada.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest entrada del motor de ventas. Los ítems se aplican en el
// orden recibido.
type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleDetailResponse detalle por ítem vendido.
type SaleDetailResponse struct {
	SaleID   string          `json:"sale_id"`
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CreateSaleResponse resultado agregado de la venta.
type CreateSaleResponse struct {
	Total   decimal.Decimal      `json:"total"`
	Details []SaleDetailResponse `json:"details"`
}

// SaleResponse salida de un registro del libro de ventas.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	ProductType string          `json:"product_type"`
	Category    string          `json:"category"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	SoldBy      string          `json:"sold_by,omitempty"`
	SoldAt      time.Time       `json:"sold_at"`
}

// SaleListResponse lista de ventas.
type SaleListResponse struct {
	Items  []SaleResponse `json:"items"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
