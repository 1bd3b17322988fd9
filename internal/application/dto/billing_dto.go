package dto

import "github.com/shopspring/decimal"

// LineItemDTO línea de cotización o factura. Price es snapshot al momento de
// crear el documento; si viene en cero se toma el precio actual del producto.
type LineItemDTO struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	Price     decimal.Decimal `json:"price"`
}

// CreateQuotationRequest entrada para crear una cotización. TotalAmount se
// calcula aquí una sola vez y no se recalcula después.
type CreateQuotationRequest struct {
	ClientName string        `json:"client_name" validate:"required"`
	Items      []LineItemDTO `json:"items" validate:"required,min=1,dive"`
	Status     string        `json:"status" validate:"omitempty,oneof=draft sent accepted rejected"`
	ValidUntil string        `json:"valid_until"`
}

// QuotationResponse salida de una cotización.
type QuotationResponse struct {
	ID          string          `json:"id"`
	ClientName  string          `json:"client_name"`
	Items       []LineItemDTO   `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"created_at"`
	ValidUntil  string          `json:"valid_until"`
}

// QuotationListResponse lista de cotizaciones.
type QuotationListResponse struct {
	Items []QuotationResponse `json:"items"`
	Total int                 `json:"total"`
}

// CreateInvoiceRequest entrada para crear una factura directa (sin pasar por
// cotización). Total e impuesto se calculan al crear.
type CreateInvoiceRequest struct {
	ClientName string        `json:"client_name" validate:"required"`
	Items      []LineItemDTO `json:"items" validate:"required,min=1,dive"`
	DueDate    string        `json:"due_date"`
}

// UpdateInvoiceRequest entrada parcial para actualizar una factura (p. ej.
// marcarla overdue). Las líneas son inmutables tras la creación.
type UpdateInvoiceRequest struct {
	ClientName *string `json:"client_name"`
	Status     *string `json:"status" validate:"omitempty,oneof=unpaid paid overdue"`
	DueDate    *string `json:"due_date"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	ClientName    string          `json:"client_name"`
	Items         []LineItemDTO   `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Tax           decimal.Decimal `json:"tax"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"created_at"`
	DueDate       string          `json:"due_date"`
}

// InvoiceListResponse lista de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Total int               `json:"total"`
}

// CreatePaymentRequest entrada para registrar un pago. Cualquier pago, aun
// parcial, marca la factura referenciada como pagada.
type CreatePaymentRequest struct {
	InvoiceID string          `json:"invoice_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" validate:"required,oneof=cash card bank-transfer check"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes"`
}

// PaymentListResponse lista de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Total int               `json:"total"`
}
