// Package billing contiene los casos de uso de cotizaciones, facturas y
// pagos, incluida la conversión cotización → factura y la representación
// gráfica en PDF.
package billing

import (
	"context"
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// InvoicePDFGenerator puerto de generación del PDF de una factura. Los
// nombres de producto llegan ya resueltos en las líneas (tolerante con
// referencias colgantes).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, lines []InvoiceLineForPDF) ([]byte, error)
}

// InvoiceLineForPDF línea de factura enriquecida para la tabla del PDF.
type InvoiceLineForPDF struct {
	ProductName string
	Item        entity.LineItem
}

// todayDate fecha calendario actual como string plano, el formato de fecha
// de todo el sistema.
func todayDate() string {
	return time.Now().Format("2006-01-02")
}

// dueDateFrom devuelve la fecha de vencimiento: 30 días después de hoy.
func dueDateFrom(now time.Time) string {
	return now.AddDate(0, 0, 30).Format("2006-01-02")
}
