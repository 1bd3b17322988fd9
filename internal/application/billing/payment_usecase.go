package billing

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// PaymentUseCase registra pagos y su efecto sobre la factura.
type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(paymentRepo repository.PaymentRepository, invoiceRepo repository.InvoiceRepository) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

// Add registra el pago y marca la factura referenciada como pagada, sin
// importar si el monto cubre el total (no hay contabilidad de pagos
// parciales: cualquier pago deja la factura en paid). Si la factura no
// existe, el pago se registra igual y el cambio de estado es un no-op.
func (uc *PaymentUseCase) Add(in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	date := in.Date
	if date == "" {
		date = todayDate()
	}
	payment := &entity.Payment{
		ID:        uuid.New().String(),
		InvoiceID: in.InvoiceID,
		Amount:    in.Amount,
		Method:    in.Method,
		Date:      date,
		Notes:     in.Notes,
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	invoice, err := uc.invoiceRepo.GetByID(in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice != nil {
		invoice.Status = entity.InvoiceStatusPaid
		if err := uc.invoiceRepo.Update(invoice); err != nil {
			return nil, err
		}
	}
	return toPaymentResponse(payment), nil
}

// List devuelve todos los pagos.
func (uc *PaymentUseCase) List() (*dto.PaymentListResponse, error) {
	payments, err := uc.paymentRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{Items: items, Total: len(items)}, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Amount:    p.Amount,
		Method:    p.Method,
		Date:      p.Date,
		Notes:     p.Notes,
	}
}
