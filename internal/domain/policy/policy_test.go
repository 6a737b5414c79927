package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
	"github.com/jgarciandiav/ventas-backend/internal/domain/policy"
)

// Matriz completa rol x operación. Cualquier cambio en la tabla debe
// reflejarse aquí de forma explícita.
func TestAllowed_TablaCompleta(t *testing.T) {
	cases := []struct {
		role string
		op   policy.Operation
		want bool
	}{
		// admin: todo permitido
		{entity.RoleAdmin, policy.OpReadCatalog, true},
		{entity.RoleAdmin, policy.OpWriteCatalog, true},
		{entity.RoleAdmin, policy.OpWritePrice, true},
		{entity.RoleAdmin, policy.OpWriteStock, true},
		{entity.RoleAdmin, policy.OpCreateSale, true},
		{entity.RoleAdmin, policy.OpReadSales, true},
		{entity.RoleAdmin, policy.OpManageUsers, true},

		// almacenero: catálogo y stock, sin precio ni usuarios ni ventas pasadas
		{entity.RoleAlmacenero, policy.OpReadCatalog, true},
		{entity.RoleAlmacenero, policy.OpWriteCatalog, true},
		{entity.RoleAlmacenero, policy.OpWritePrice, false},
		{entity.RoleAlmacenero, policy.OpWriteStock, true},
		{entity.RoleAlmacenero, policy.OpCreateSale, true},
		{entity.RoleAlmacenero, policy.OpReadSales, false},
		{entity.RoleAlmacenero, policy.OpManageUsers, false},

		// usuario: solo leer catálogo y vender
		{entity.RoleUsuario, policy.OpReadCatalog, true},
		{entity.RoleUsuario, policy.OpWriteCatalog, false},
		{entity.RoleUsuario, policy.OpWritePrice, false},
		{entity.RoleUsuario, policy.OpWriteStock, false},
		{entity.RoleUsuario, policy.OpCreateSale, true},
		{entity.RoleUsuario, policy.OpReadSales, false},
		{entity.RoleUsuario, policy.OpManageUsers, false},
	}

	for _, tc := range cases {
		got := policy.Allowed(tc.role, tc.op)
		assert.Equal(t, tc.want, got, "role=%s op=%s", tc.role, tc.op)
	}
}

func TestAllowed_RolUOperacionDesconocidos_Niega(t *testing.T) {
	assert.False(t, policy.Allowed("", policy.OpReadCatalog))
	assert.False(t, policy.Allowed("superadmin", policy.OpManageUsers))
	assert.False(t, policy.Allowed(entity.RoleAdmin, policy.Operation("drop-tables")))
}

// La política es determinista: el mismo par siempre devuelve lo mismo.
func TestAllowed_Determinista(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.True(t, policy.Allowed(entity.RoleAlmacenero, policy.OpWriteStock))
		assert.False(t, policy.Allowed(entity.RoleAlmacenero, policy.OpWritePrice))
	}
}
