// Package policy centraliza la tabla rol/operación de toda la aplicación.
// Los handlers y casos de uso consultan Allowed en lugar de redefinir
// chequeos de rol por endpoint.
package policy

import "github.com/jgarciandiav/ventas-backend/internal/domain/entity"

// Operation es una operación de grano grueso sujeta a autorización.
type Operation string

const (
	OpReadCatalog  Operation = "read-catalog"
	OpWriteCatalog Operation = "write-catalog" // crear/actualizar producto, sin precio
	OpWritePrice   Operation = "write-price"
	OpWriteStock   Operation = "write-stock" // set-stock y restock
	OpCreateSale   Operation = "create-sale"
	OpReadSales    Operation = "read-sales"
	OpManageUsers  Operation = "manage-users"
)

// table: rol -> operaciones permitidas. Todo lo que no aparece se niega.
var table = map[string]map[Operation]bool{
	entity.RoleAdmin: {
		OpReadCatalog:  true,
		OpWriteCatalog: true,
		OpWritePrice:   true,
		OpWriteStock:   true,
		OpCreateSale:   true,
		OpReadSales:    true,
		OpManageUsers:  true,
	},
	entity.RoleAlmacenero: {
		OpReadCatalog:  true,
		OpWriteCatalog: true,
		OpWriteStock:   true,
		OpCreateSale:   true,
	},
	entity.RoleUsuario: {
		OpReadCatalog: true,
		OpCreateSale:  true,
	},
}

// Allowed decide si el rol puede ejecutar la operación. Es una función pura:
// rol u operación desconocidos siempre niegan.
func Allowed(role string, op Operation) bool {
	return table[role][op]
}
