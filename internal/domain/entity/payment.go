package entity

import "github.com/shopspring/decimal"

// Métodos de pago válidos.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodBankTransfer = "bank-transfer"
	PaymentMethodCheck        = "check"
)

// Payment representa un pago registrado contra una factura. Registrar
// cualquier pago, aun parcial, marca la factura como pagada: no hay
// contabilidad de pagos parciales.
type Payment struct {
	ID        string
	InvoiceID string
	Amount    decimal.Decimal
	Method    string // cash, card, bank-transfer, check
	Date      string
	Notes     string
}
