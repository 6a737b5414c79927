package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jgarciandiav/ventas-backend/internal/application/dto"
	"github.com/jgarciandiav/ventas-backend/internal/domain"
	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
	"github.com/jgarciandiav/ventas-backend/internal/domain/policy"
	"github.com/jgarciandiav/ventas-backend/internal/domain/repository"
)

// SaleUseCase es el motor de transacciones de venta: valida cada ítem,
// decrementa stock con bloqueo de fila y agrega el snapshot al libro de
// ventas, todo dentro de UNA transacción. La venta es atómica: si cualquier
// ítem falla se revierte el lote completo.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// CreateSale procesa los ítems en el orden recibido. Para cada uno: bloquea la
// fila del producto (SELECT FOR UPDATE), verifica vencimiento y stock,
// decrementa y persiste el registro de venta con snapshot del producto.
// Dos ítems del mismo producto en la misma venta observan el decremento del
// anterior porque la tx relee la fila ya modificada.
func (uc *SaleUseCase) CreateSale(ctx context.Context, actor Actor, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpCreateSale) {
		return nil, domain.ErrForbidden
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	var out *dto.CreateSaleResponse

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		total := decimal.Zero
		details := make([]dto.SaleDetailResponse, 0, len(in.Items))

		for _, item := range in.Items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.ProductNotFoundError{ProductID: item.ProductID}
			}
			if product.Expired(now) {
				return &domain.ExpiredProductError{
					ProductName: product.Name,
					ExpiredAt:   *product.ExpiresAt,
				}
			}
			if product.Stock < item.Quantity {
				return &domain.InsufficientStockError{
					ProductName: product.Name,
					Available:   product.Stock,
					Requested:   item.Quantity,
				}
			}
			if err := productRepo.SetStock(product.ID, product.Stock-item.Quantity); err != nil {
				return err
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			sale := &entity.Sale{
				ID:          uuid.New().String(),
				ProductName: product.Name,
				ProductType: product.Type,
				Category:    product.Category,
				UnitPrice:   product.Price,
				Quantity:    item.Quantity,
				Total:       subtotal,
				SoldBy:      actor.Username,
				SoldAt:      now,
			}
			if err := saleRepo.Create(sale); err != nil {
				return err
			}

			total = total.Add(subtotal)
			details = append(details, dto.SaleDetailResponse{
				SaleID:   sale.ID,
				Product:  product.Name,
				Quantity: item.Quantity,
				Subtotal: subtotal,
			})
		}

		out = &dto.CreateSaleResponse{Total: total, Details: details}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListSales lista el libro de ventas (solo admin), con filtro opcional por día.
func (uc *SaleUseCase) ListSales(actor Actor, date *time.Time, page dto.PageRequest) (*dto.SaleListResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpReadSales) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	sales, err := uc.saleRepo.List(date, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Limit: page.Limit, Offset: page.Offset}, nil
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		ProductName: s.ProductName,
		ProductType: s.ProductType,
		Category:    s.Category,
		UnitPrice:   s.UnitPrice,
		Quantity:    s.Quantity,
		Total:       s.Total,
		SoldBy:      s.SoldBy,
		SoldAt:      s.SoldAt,
	}
}
