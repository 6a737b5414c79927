package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// AddStock y las actualizaciones de campo son operaciones atómicas en la BD;
// GetForUpdate bloquea la fila y solo tiene sentido dentro de una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdatePrice(id string, price decimal.Decimal) error
	SetStock(id string, stock int) error
	// AddStock incrementa el stock de forma atómica y devuelve el nuevo valor.
	AddStock(id string, quantity int) (int, error)
	List(limit, offset int) ([]*entity.Product, error)
}
