package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgarciandiav/ventas-backend/internal/application/dto"
	"github.com/jgarciandiav/ventas-backend/internal/application/usecase"
	"github.com/jgarciandiav/ventas-backend/internal/domain"
	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
	apphttp "github.com/jgarciandiav/ventas-backend/internal/interfaces/http"
	"github.com/jgarciandiav/ventas-backend/pkg/validator"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdatePrice(id string, price decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Price = price
	return nil
}

func (r *fakeProductRepo) SetStock(id string, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) AddStock(id string, quantity int) (int, error) {
	p, ok := r.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Stock += quantity
	return p.Stock, nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildProductApp(repo *fakeProductRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewProductHandler(usecase.NewProductUseCase(repo), validator.New())
	g := app.Group("/api/products", apphttp.AuthMiddleware(testJWTSecret))
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id/price", h.SetPrice)
	g.Post("/:id/restock", h.Restock)
	return app
}

func jsonRequest(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func seedProduct(repo *fakeProductRepo, id string, stock int) {
	now := time.Now()
	repo.products[id] = &entity.Product{
		ID:        id,
		Name:      "Arroz Extra",
		Type:      "grano",
		Category:  "abarrotes",
		Price:     decimal.NewFromFloat(3.50),
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestProductHandler_Create_AlmaceneroCrea(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)

	resp := jsonRequest(t, app, http.MethodPost, "/api/products/", tokenForRole(t, "almacenero"), dto.CreateProductRequest{
		Name:     "Leche Entera",
		Type:     "lacteo",
		Category: "abarrotes",
		Price:    decimal.NewFromFloat(1.20),
		Stock:    10,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.ProductResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Leche Entera", out.Name)
	assert.Equal(t, 10, out.Stock)
	assert.NotEmpty(t, out.ID)
}

func TestProductHandler_Create_UsuarioBloqueado(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)

	resp := jsonRequest(t, app, http.MethodPost, "/api/products/", tokenForRole(t, "usuario"), dto.CreateProductRequest{
		Name:     "Leche Entera",
		Type:     "lacteo",
		Category: "abarrotes",
		Price:    decimal.NewFromFloat(1.20),
		Stock:    10,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"rol usuario no debe poder crear productos")
	assert.Empty(t, repo.products, "no debe persistirse nada tras un 403")
}

func TestProductHandler_Create_BodyInvalido_Retorna400(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)

	// name vacío: rechazado por los tags validate del DTO
	resp := jsonRequest(t, app, http.MethodPost, "/api/products/", tokenForRole(t, "almacenero"), map[string]any{
		"type": "lacteo", "category": "abarrotes",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductHandler_SetPrice_SoloAdmin(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)
	seedProduct(repo, "p1", 5)

	// almacenero no puede tocar precio
	resp := jsonRequest(t, app, http.MethodPut, "/api/products/p1/price", tokenForRole(t, "almacenero"), dto.SetPriceRequest{
		Price: decimal.NewFromFloat(9.99),
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.True(t, repo.products["p1"].Price.Equal(decimal.NewFromFloat(3.50)),
		"el precio no debe cambiar tras un 403")

	// admin sí
	resp = jsonRequest(t, app, http.MethodPut, "/api/products/p1/price", tokenForRole(t, "admin"), dto.SetPriceRequest{
		Price: decimal.NewFromFloat(9.99),
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, repo.products["p1"].Price.Equal(decimal.NewFromFloat(9.99)))
}

func TestProductHandler_Restock_Acumula(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)
	seedProduct(repo, "p1", 5)

	resp := jsonRequest(t, app, http.MethodPost, "/api/products/p1/restock", tokenForRole(t, "almacenero"), dto.RestockRequest{
		Quantity: 7,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.RestockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 12, out.NewStock)
	assert.Equal(t, 12, repo.products["p1"].Stock)
}

func TestProductHandler_Restock_ProductoInexistente_Retorna404(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)

	resp := jsonRequest(t, app, http.MethodPost, "/api/products/nope/restock", tokenForRole(t, "almacenero"), dto.RestockRequest{
		Quantity: 3,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProductHandler_GetByID_NoExiste_Retorna404(t *testing.T) {
	repo := newFakeProductRepo()
	app := buildProductApp(repo)

	resp := jsonRequest(t, app, http.MethodGet, "/api/products/nope", tokenForRole(t, "usuario"), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
