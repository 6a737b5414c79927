package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jgarciandiav/ventas-backend/internal/application/dto"
	"github.com/jgarciandiav/ventas-backend/internal/application/sales"
	"github.com/jgarciandiav/ventas-backend/pkg/validator"
)

// SaleHandler maneja el motor de ventas y el libro de ventas (protegido).
type SaleHandler struct {
	saleUC   *sales.SaleUseCase
	reportUC *sales.ReportUseCase
	validate *validator.Validator
}

// NewSaleHandler construye el handler.
func NewSaleHandler(saleUC *sales.SaleUseCase, reportUC *sales.ReportUseCase, validate *validator.Validator) *SaleHandler {
	return &SaleHandler{saleUC: saleUC, reportUC: reportUC, validate: validate}
}

// parseDate interpreta el query param date (YYYY-MM-DD). Vacío = sin filtro.
func parseDate(c *fiber.Ctx) (*time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("date debe tener formato YYYY-MM-DD")
	}
	return &d, nil
}

// Create godoc
// @Summary      Registrar venta (lote atómico)
// @Description  Procesa los ítems en orden dentro de una transacción. Si cualquier ítem falla por stock, vencimiento o inexistencia, el lote completo se revierte.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Ítems de la venta"
// @Success      201   {object}  dto.CreateSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.saleUC.CreateSale(c.UserContext(), GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar libro de ventas (solo admin)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        date    query  string  false  "Filtrar por día (YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.SaleListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.saleUC.ListSales(GetActor(c), date, page)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Descargar reporte de ventas en PDF (solo admin)
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  query  string  false  "Filtrar por día (YYYY-MM-DD)"
// @Success      200   {file}    binary
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sales/report [get]
func (h *SaleHandler) Report(c *fiber.Ctx) error {
	date, err := parseDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdfBytes, err := h.reportUC.SalesReportPDF(GetActor(c), date)
	if err != nil {
		return domainError(c, err)
	}
	filename := "ventas.pdf"
	if date != nil {
		filename = "ventas-" + date.Format("2006-01-02") + ".pdf"
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
