package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jgarciandiav/ventas-backend/internal/domain"
	"github.com/jgarciandiav/ventas-backend/internal/domain/entity"
	"github.com/jgarciandiav/ventas-backend/internal/domain/policy"
	"github.com/jgarciandiav/ventas-backend/internal/domain/repository"
)

// maxReportRows tope de filas para el reporte PDF.
const maxReportRows = 1000

// ReportGenerator es el puerto de generación del reporte de ventas.
// Lo implementa pdf.MarotoReportGenerator.
type ReportGenerator interface {
	GenerateSalesReport(sales []*entity.Sale, total decimal.Decimal, date *time.Time, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase exporta el libro de ventas como PDF (solo admin).
type ReportUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, generator: generator}
}

// SalesReportPDF genera el PDF con las ventas del día indicado (nil = todas).
func (uc *ReportUseCase) SalesReportPDF(actor Actor, date *time.Time) ([]byte, error) {
	if !policy.Allowed(actor.Role, policy.OpReadSales) {
		return nil, domain.ErrForbidden
	}
	sales, err := uc.saleRepo.List(date, maxReportRows, 0)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return uc.generator.GenerateSalesReport(sales, total, date, time.Now())
}
