package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
	"github.com/jgarciandiav/ventas-backend/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del libro de ventas sobre PostgreSQL (usable con pool o tx).
// Solo INSERT y SELECT: la tabla es append-only.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta un registro de venta inmutable.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_name, product_type, category, unit_price, quantity, total, sold_by, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductName, sale.ProductType, sale.Category,
		sale.UnitPrice, sale.Quantity, sale.Total, sale.SoldBy, sale.SoldAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// List devuelve ventas ordenadas por fecha descendente. date filtra por día (nil = todas).
func (r *SaleRepo) List(date *time.Time, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_name, product_type, category, unit_price, quantity, total, sold_by, sold_at
		FROM sales`
	args := []any{limit, offset}
	if date != nil {
		query += ` WHERE sold_at::date = $3::date`
		args = append(args, *date)
	}
	query += ` ORDER BY sold_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductName, &s.ProductType, &s.Category,
			&s.UnitPrice, &s.Quantity, &s.Total, &s.SoldBy, &s.SoldAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
