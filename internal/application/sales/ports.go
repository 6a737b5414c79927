package sales

import (
	"context"

	"github.com/jgarciandiav/ventas-backend/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ventas:
// si fn retorna error, toda la venta se revierte.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// Actor es quien ejecuta la operación. El rol viaja como parámetro explícito;
// ninguna operación lee estado ambiente del request.
type Actor struct {
	UserID   string
	Username string
	Role     string
}
