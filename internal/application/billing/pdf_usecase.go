package billing

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, productRepo: productRepo, generator: generator}
}

// GenerateInvoicePDF devuelve los bytes del PDF de la factura, o
// domain.ErrNotFound si la factura no existe. Los nombres de producto se
// resuelven de forma tolerante: una línea con producto inexistente se imprime
// con el ID como descripción, nunca falla.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	lines := make([]InvoiceLineForPDF, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		name := item.ProductID
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			name = product.Name
		}
		lines = append(lines, InvoiceLineForPDF{ProductName: name, Item: item})
	}
	return uc.generator.GenerateInvoicePDF(ctx, invoice, lines)
}
