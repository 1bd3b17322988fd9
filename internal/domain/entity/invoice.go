package entity

import "github.com/shopspring/decimal"

// Estados de una Invoice.
const (
	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// InvoiceTaxRate impuesto fijo del 10% sobre el total antes de impuestos.
var InvoiceTaxRate = decimal.NewFromFloat(0.10)

// Invoice representa una factura. InvoiceNumber es consecutivo con formato
// INV-NNN (tres dígitos, derivado del conteo de facturas al momento de crear).
// TotalAmount es pre-impuestos; Tax = TotalAmount × 10%.
type Invoice struct {
	ID            string
	InvoiceNumber string
	ClientName    string
	Items         []LineItem
	TotalAmount   decimal.Decimal
	Tax           decimal.Decimal
	Status        string // unpaid, paid, overdue
	CreatedAt     string
	DueDate       string
}

// GrandTotal devuelve el total a pagar (subtotal + impuesto).
func (i *Invoice) GrandTotal() decimal.Decimal {
	return i.TotalAmount.Add(i.Tax)
}
