package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturas: creación directa, conversión desde
// cotización y actualización parcial.
type InvoiceUseCase struct {
	invoiceRepo   repository.InvoiceRepository
	quotationRepo repository.QuotationRepository
	productRepo   repository.ProductRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	quotationRepo repository.QuotationRepository,
	productRepo repository.ProductRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, quotationRepo: quotationRepo, productRepo: productRepo}
}

// nextInvoiceNumber deriva el consecutivo del conteo actual de facturas:
// INV-NNN con tres dígitos. El conteo no es estrictamente monotónico como
// generador de consecutivos, pero es el comportamiento contractual del
// sistema y se conserva.
func nextInvoiceNumber(currentCount int) string {
	return fmt.Sprintf("INV-%03d", currentCount+1)
}

// Create registra una factura directa: total desde las líneas, impuesto fijo
// del 10%, estado unpaid y vencimiento a 30 días si no viene fecha.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	items := make([]entity.LineItem, 0, len(in.Items))
	total := decimal.Zero
	for _, li := range in.Items {
		price := li.Price
		if price.IsZero() {
			product, err := uc.productRepo.GetByID(li.ProductID)
			if err != nil {
				return nil, err
			}
			if product != nil {
				price = product.Price
			}
		}
		item := entity.LineItem{ProductID: li.ProductID, Quantity: li.Quantity, Price: price}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	count, err := uc.invoiceRepo.Count()
	if err != nil {
		return nil, err
	}
	dueDate := in.DueDate
	if dueDate == "" {
		dueDate = dueDateFrom(time.Now())
	}
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: nextInvoiceNumber(count),
		ClientName:    in.ClientName,
		Items:         items,
		TotalAmount:   total,
		Tax:           total.Mul(entity.InvoiceTaxRate),
		Status:        entity.InvoiceStatusUnpaid,
		CreatedAt:     todayDate(),
		DueDate:       dueDate,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// ConvertFromQuotation construye una factura copiando cliente y líneas de la
// cotización: mismo total, impuesto del 10%, unpaid, vencimiento a 30 días y
// consecutivo derivado del conteo actual. Devuelve (nil, nil) si la
// cotización no existe.
//
// El estado de la cotización NO se toca: una cotización puede convertirse más
// de una vez y producir facturas duplicadas. Comportamiento heredado del
// producto, conservado a propósito.
func (uc *InvoiceUseCase) ConvertFromQuotation(quotationID string) (*dto.InvoiceResponse, error) {
	quotation, err := uc.quotationRepo.GetByID(quotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, nil
	}

	count, err := uc.invoiceRepo.Count()
	if err != nil {
		return nil, err
	}
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: nextInvoiceNumber(count),
		ClientName:    quotation.ClientName,
		Items:         append([]entity.LineItem(nil), quotation.Items...),
		TotalAmount:   quotation.TotalAmount,
		Tax:           quotation.TotalAmount.Mul(entity.InvoiceTaxRate),
		Status:        entity.InvoiceStatusUnpaid,
		CreatedAt:     todayDate(),
		DueDate:       dueDateFrom(time.Now()),
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Update fusiona cambios parciales (cliente, estado, vencimiento). Las líneas
// y los montos son inmutables tras la creación. (nil, nil) si no existe.
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	if in.ClientName != nil {
		invoice.ClientName = *in.ClientName
	}
	if in.Status != nil {
		invoice.Status = *in.Status
	}
	if in.DueDate != nil {
		invoice.DueDate = *in.DueDate
	}
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GetByID devuelve la factura o (nil, nil) si no existe.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return toInvoiceResponse(invoice), nil
}

// List devuelve todas las facturas.
func (uc *InvoiceUseCase) List() (*dto.InvoiceListResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{Items: items, Total: len(items)}, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.ClientName,
		Items:         toLineItemDTOs(inv.Items),
		TotalAmount:   inv.TotalAmount,
		Tax:           inv.Tax,
		GrandTotal:    inv.GrandTotal(),
		Status:        inv.Status,
		CreatedAt:     inv.CreatedAt,
		DueDate:       inv.DueDate,
	}
}
