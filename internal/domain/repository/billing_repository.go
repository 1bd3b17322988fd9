package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// QuotationRepository define el puerto de acceso a cotizaciones.
type QuotationRepository interface {
	Create(quotation *entity.Quotation) error
	GetByID(id string) (*entity.Quotation, error)
	List() ([]*entity.Quotation, error)
}

// InvoiceRepository define el puerto de acceso a facturas. Count alimenta el
// consecutivo INV-NNN al momento de crear una factura.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	List() ([]*entity.Invoice, error)
	Count() (int, error)
}

// PaymentRepository define el puerto de acceso a pagos.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	List() ([]*entity.Payment, error)
}
