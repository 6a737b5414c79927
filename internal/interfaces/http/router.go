package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jgarciandiav/ventas-backend/internal/application/auth"
	"github.com/jgarciandiav/ventas-backend/internal/application/sales"
	"github.com/jgarciandiav/ventas-backend/internal/application/usecase"
	"github.com/jgarciandiav/ventas-backend/pkg/validator"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	UserUC    *usecase.UserUseCase
	SaleUC    *sales.SaleUseCase
	ReportUC  *sales.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API. La autorización por rol vive en los
// casos de uso (tabla de permisos); el middleware solo autentica.
func Router(app *fiber.App, deps RouterDeps) {
	validate := validator.New()
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, validate)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Alta de personal (protegido, solo admin vía caso de uso)
	protected.Post("/register-staff", authHandler.RegisterStaff)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, validate)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Put("/:id/price", productHandler.SetPrice)
	products.Put("/:id/stock", productHandler.SetStock)
	products.Post("/:id/restock", productHandler.Restock)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReportUC, validate)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/report", saleHandler.Report)

	// Users (protegido, solo admin vía caso de uso)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, validate)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
}
