package entity

import "github.com/shopspring/decimal"

// Estados de una Quotation.
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusRejected = "rejected"
)

// LineItem línea embebida de Quotation e Invoice. Price es un snapshot del
// precio del producto al momento de crear el documento: cambios posteriores
// del Product no lo afectan. Al convertir cotización en factura las líneas se
// copian, no se referencian.
type LineItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// Subtotal devuelve price × quantity de la línea.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Quotation representa una cotización. TotalAmount se calcula al crearla y no
// se recalcula después (las líneas son inmutables tras la creación).
type Quotation struct {
	ID          string
	ClientName  string
	Items       []LineItem
	TotalAmount decimal.Decimal
	Status      string // draft, sent, accepted, rejected
	CreatedAt   string
	ValidUntil  string
}
