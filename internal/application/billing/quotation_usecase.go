package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// QuotationUseCase casos de uso de cotizaciones.
type QuotationUseCase struct {
	quotationRepo repository.QuotationRepository
	productRepo   repository.ProductRepository
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(quotationRepo repository.QuotationRepository, productRepo repository.ProductRepository) *QuotationUseCase {
	return &QuotationUseCase{quotationRepo: quotationRepo, productRepo: productRepo}
}

// Create registra una cotización. El precio de cada línea es un snapshot: si
// viene en cero se toma el precio actual del producto y queda congelado.
// TotalAmount se calcula aquí, una sola vez; no se recalcula en ediciones
// posteriores (las líneas son inmutables tras la creación).
func (uc *QuotationUseCase) Create(in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.QuotationStatusDraft
	}
	items, total, err := uc.resolveLines(in.Items)
	if err != nil {
		return nil, err
	}
	quotation := &entity.Quotation{
		ID:          uuid.New().String(),
		ClientName:  in.ClientName,
		Items:       items,
		TotalAmount: total,
		Status:      status,
		CreatedAt:   todayDate(),
		ValidUntil:  in.ValidUntil,
	}
	if err := uc.quotationRepo.Create(quotation); err != nil {
		return nil, err
	}
	return toQuotationResponse(quotation), nil
}

// List devuelve todas las cotizaciones.
func (uc *QuotationUseCase) List() (*dto.QuotationListResponse, error) {
	quotations, err := uc.quotationRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		items = append(items, *toQuotationResponse(q))
	}
	return &dto.QuotationListResponse{Items: items, Total: len(items)}, nil
}

// resolveLines materializa las líneas con precio snapshot y devuelve el total
// (suma de precio × cantidad).
func (uc *QuotationUseCase) resolveLines(in []dto.LineItemDTO) ([]entity.LineItem, decimal.Decimal, error) {
	items := make([]entity.LineItem, 0, len(in))
	total := decimal.Zero
	for _, li := range in {
		price := li.Price
		if price.IsZero() {
			product, err := uc.productRepo.GetByID(li.ProductID)
			if err != nil {
				return nil, decimal.Zero, err
			}
			if product != nil {
				price = product.Price
			}
		}
		item := entity.LineItem{ProductID: li.ProductID, Quantity: li.Quantity, Price: price}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}
	return items, total, nil
}

func toQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	if q == nil {
		return nil
	}
	return &dto.QuotationResponse{
		ID:          q.ID,
		ClientName:  q.ClientName,
		Items:       toLineItemDTOs(q.Items),
		TotalAmount: q.TotalAmount,
		Status:      q.Status,
		CreatedAt:   q.CreatedAt,
		ValidUntil:  q.ValidUntil,
	}
}

func toLineItemDTOs(items []entity.LineItem) []dto.LineItemDTO {
	out := make([]dto.LineItemDTO, 0, len(items))
	for _, li := range items {
		out = append(out, dto.LineItemDTO{ProductID: li.ProductID, Quantity: li.Quantity, Price: li.Price})
	}
	return out
}
