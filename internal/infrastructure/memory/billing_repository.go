package memory

import (
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var (
	_ repository.QuotationRepository = (*QuotationRepo)(nil)
	_ repository.InvoiceRepository   = (*InvoiceRepo)(nil)
	_ repository.PaymentRepository   = (*PaymentRepo)(nil)
)

// QuotationRepo implementación en memoria del puerto QuotationRepository.
type QuotationRepo struct {
	s *Store
}

// NewQuotationRepository construye el adaptador.
func NewQuotationRepository(s *Store) *QuotationRepo {
	return &QuotationRepo{s: s}
}

func (r *QuotationRepo) Create(quotation *entity.Quotation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.quotations = appended(r.s.quotations, cloneQuotation(quotation))
	return nil
}

func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, q := range r.s.quotations {
		if q.ID == id {
			return cloneQuotation(q), nil
		}
	}
	return nil, nil
}

func (r *QuotationRepo) List() ([]*entity.Quotation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Quotation, 0, len(r.s.quotations))
	for _, q := range r.s.quotations {
		out = append(out, cloneQuotation(q))
	}
	return out, nil
}

// InvoiceRepo implementación en memoria del puerto InvoiceRepository.
type InvoiceRepo struct {
	s *Store
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(s *Store) *InvoiceRepo {
	return &InvoiceRepo{s: s}
}

func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices = appended(r.s.invoices, cloneInvoice(invoice))
	return nil
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, inv := range r.s.invoices {
		if inv.ID == id {
			return cloneInvoice(inv), nil
		}
	}
	return nil, nil
}

func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := make([]*entity.Invoice, len(r.s.invoices))
	for i, inv := range r.s.invoices {
		if inv.ID == invoice.ID {
			next[i] = cloneInvoice(invoice)
		} else {
			next[i] = inv
		}
	}
	r.s.invoices = next
	return nil
}

func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		out = append(out, cloneInvoice(inv))
	}
	return out, nil
}

// Count devuelve el número actual de facturas (alimenta el consecutivo INV-NNN).
func (r *InvoiceRepo) Count() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.invoices), nil
}

// PaymentRepo implementación en memoria del puerto PaymentRepository.
type PaymentRepo struct {
	s *Store
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(s *Store) *PaymentRepo {
	return &PaymentRepo{s: s}
}

func (r *PaymentRepo) Create(payment *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payments = appended(r.s.payments, clonePayment(payment))
	return nil
}

func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Payment, 0, len(r.s.payments))
	for _, p := range r.s.payments {
		out = append(out, clonePayment(p))
	}
	return out, nil
}
