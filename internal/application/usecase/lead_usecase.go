package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// LeadUseCase casos de uso de leads, incluida la conversión a deal.
type LeadUseCase struct {
	leadRepo repository.LeadRepository
	dealRepo repository.DealRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(leadRepo repository.LeadRepository, dealRepo repository.DealRepository) *LeadUseCase {
	return &LeadUseCase{leadRepo: leadRepo, dealRepo: dealRepo}
}

// Create registra un nuevo lead. Sin status explícito arranca en "new".
func (uc *LeadUseCase) Create(in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.LeadStatusNew
	}
	lead := &entity.Lead{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Source:    in.Source,
		Status:    status,
		CreatedAt: todayDate(),
	}
	if err := uc.leadRepo.Create(lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// Update fusiona los cambios parciales sobre el lead; los campos ausentes no
// se tocan. Devuelve (nil, nil) si el ID no existe.
func (uc *LeadUseCase) Update(id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.leadRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	if in.Name != nil {
		lead.Name = *in.Name
	}
	if in.Email != nil {
		lead.Email = *in.Email
	}
	if in.Phone != nil {
		lead.Phone = *in.Phone
	}
	if in.Company != nil {
		lead.Company = *in.Company
	}
	if in.Source != nil {
		lead.Source = *in.Source
	}
	if in.Status != nil {
		lead.Status = *in.Status
	}
	if err := uc.leadRepo.Update(lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// ConvertToDeal marca el lead como converted y crea el deal con el payload
// dado, como un único paso condicional: si el lead no existe no pasa nada,
// ni siquiera se crea el deal. El lead convertido se conserva; no se guarda
// referencia dura al deal generado.
func (uc *LeadUseCase) ConvertToDeal(leadID string, in dto.ConvertLeadRequest) (*dto.DealResponse, error) {
	lead, err := uc.leadRepo.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}

	lead.Status = entity.LeadStatusConverted
	if err := uc.leadRepo.Update(lead); err != nil {
		return nil, err
	}

	stage := in.Stage
	if stage == "" {
		stage = entity.DealStageProspect
	}
	deal := &entity.Deal{
		ID:                  uuid.New().String(),
		Name:                in.Name,
		ClientName:          in.ClientName,
		Value:               in.Value,
		Stage:               stage,
		AssignedManagerID:   in.AssignedManagerID,
		ExpectedClosingDate: in.ExpectedClosingDate,
		CreatedAt:           todayDate(),
	}
	if err := uc.dealRepo.Create(deal); err != nil {
		return nil, err
	}
	return toDealResponse(deal), nil
}

// List devuelve todos los leads.
func (uc *LeadUseCase) List() (*dto.LeadListResponse, error) {
	leads, err := uc.leadRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		items = append(items, *toLeadResponse(l))
	}
	return &dto.LeadListResponse{Items: items, Total: len(items)}, nil
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	return &dto.LeadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Company:   l.Company,
		Source:    l.Source,
		Status:    l.Status,
		CreatedAt: l.CreatedAt,
	}
}
