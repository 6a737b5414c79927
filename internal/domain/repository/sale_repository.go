package repository

import (
	"time"

	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
)

// SaleRepository define el puerto del libro de ventas. Solo inserción y
// lectura: los registros de venta son inmutables, nunca se actualizan ni
// eliminan.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// List devuelve ventas ordenadas por fecha descendente. date filtra por
	// día (nil = todas).
	List(date *time.Time, limit, offset int) ([]*entity.Sale, error)
}
