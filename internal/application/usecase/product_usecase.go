package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jgarciandiav/ventas-backend/internal/application/dto"
	"github.com/jgarciandiav/ventas-backend/internal/application/sales"
	"github.com/jgarciandiav/ventas-backend/internal/domain"
	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
	"github.com/jgarciandiav/ventas-backend/internal/domain/policy"
	"github.com/jgarciandiav/ventas-backend/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: CRUD más los contratos estrechos
// set-price, set-stock y restock. Precio y stock tienen reglas propias aunque
// el cliente los empaquete en un update genérico.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// cleanName normaliza a NFC y recorta espacios. Los nombres en español llegan
// de los navegadores en formas de normalización mezcladas.
func cleanName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Create crea un producto. Rechaza precio negativo, stock negativo y fecha de
// vencimiento en el pasado.
func (uc *ProductUseCase) Create(actor sales.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpWriteCatalog) {
		return nil, domain.ErrForbidden
	}
	if in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ExpiresAt != nil && in.ExpiresAt.Before(time.Now()) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      cleanName(in.Name),
		Type:      cleanName(in.Type),
		Category:  cleanName(in.Category),
		ExpiresAt: in.ExpiresAt,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(actor sales.Actor, id string) (*dto.ProductResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpReadCatalog) {
		return nil, domain.ErrForbidden
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista el catálogo con paginación.
func (uc *ProductUseCase) List(actor sales.Actor, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpReadCatalog) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Limit: page.Limit, Offset: page.Offset}, nil
}

// Update actualiza campos descriptivos. Si el body incluye precio, exige el
// permiso write-price aunque el resto del update esté permitido: precio y
// stock llevan un nivel de confianza distinto al de nombre o categoría.
func (uc *ProductUseCase) Update(actor sales.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpWriteCatalog) {
		return nil, domain.ErrForbidden
	}
	if in.Price != nil && !policy.Allowed(actor.Role, policy.OpWritePrice) {
		return nil, domain.ErrForbidden
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = cleanName(*in.Name)
	}
	if in.Type != nil {
		product.Type = cleanName(*in.Type)
	}
	if in.Category != nil {
		product.Category = cleanName(*in.Category)
	}
	if in.ExpiresAt != nil {
		product.ExpiresAt = in.ExpiresAt
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SetPrice contrato estrecho de precio: solo admin, precio > 0.
func (uc *ProductUseCase) SetPrice(actor sales.Actor, id string, in dto.SetPriceRequest) (*dto.ProductResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpWritePrice) {
		return nil, domain.ErrForbidden
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if err := uc.repo.UpdatePrice(id, in.Price); err != nil {
		return nil, err
	}
	product.Price = in.Price
	return toProductResponse(product), nil
}

// SetStock contrato estrecho de stock: fija el valor absoluto (>= 0).
func (uc *ProductUseCase) SetStock(actor sales.Actor, id string, in dto.SetStockRequest) (*dto.ProductResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpWriteStock) {
		return nil, domain.ErrForbidden
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if err := uc.repo.SetStock(id, in.Stock); err != nil {
		return nil, err
	}
	product.Stock = in.Stock
	return toProductResponse(product), nil
}

// Restock suma cantidad al stock y devuelve el nuevo valor. Cada llamada es un
// evento físico de reposición: llamadas repetidas acumulan, no es idempotente.
func (uc *ProductUseCase) Restock(actor sales.Actor, id string, in dto.RestockRequest) (*dto.RestockResponse, error) {
	if !policy.Allowed(actor.Role, policy.OpWriteStock) {
		return nil, domain.ErrForbidden
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	newStock, err := uc.repo.AddStock(id, in.Quantity)
	if err != nil {
		return nil, err
	}
	return &dto.RestockResponse{ID: id, NewStock: newStock}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Category:  p.Category,
		ExpiresAt: p.ExpiresAt,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
