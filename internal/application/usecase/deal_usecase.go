package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// DealUseCase casos de uso CRUD para deals.
type DealUseCase struct {
	repo repository.DealRepository
}

// NewDealUseCase construye el caso de uso.
func NewDealUseCase(repo repository.DealRepository) *DealUseCase {
	return &DealUseCase{repo: repo}
}

// Create registra un nuevo deal. Sin stage explícito arranca en "prospect".
func (uc *DealUseCase) Create(in dto.CreateDealRequest) (*dto.DealResponse, error) {
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
	if err := uc.repo.Create(deal); err != nil {
		return nil, err
	}
	return toDealResponse(deal), nil
}

// Update fusiona los cambios parciales; (nil, nil) si el ID no existe.
func (uc *DealUseCase) Update(id string, in dto.UpdateDealRequest) (*dto.DealResponse, error) {
	deal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, nil
	}
	if in.Name != nil {
		deal.Name = *in.Name
	}
	if in.ClientName != nil {
		deal.ClientName = *in.ClientName
	}
	if in.Value != nil {
		deal.Value = *in.Value
	}
	if in.Stage != nil {
		deal.Stage = *in.Stage
	}
	if in.AssignedManagerID != nil {
		deal.AssignedManagerID = *in.AssignedManagerID
	}
	if in.ExpectedClosingDate != nil {
		deal.ExpectedClosingDate = *in.ExpectedClosingDate
	}
	if err := uc.repo.Update(deal); err != nil {
		return nil, err
	}
	return toDealResponse(deal), nil
}

// List devuelve todos los deals.
func (uc *DealUseCase) List() (*dto.DealListResponse, error) {
	deals, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.DealResponse, 0, len(deals))
	for _, d := range deals {
		items = append(items, *toDealResponse(d))
	}
	return &dto.DealListResponse{Items: items, Total: len(items)}, nil
}

func toDealResponse(d *entity.Deal) *dto.DealResponse {
	if d == nil {
		return nil
	}
	return &dto.DealResponse{
		ID:                  d.ID,
		Name:                d.Name,
		ClientName:          d.ClientName,
		Value:               d.Value,
		Stage:               d.Stage,
		AssignedManagerID:   d.AssignedManagerID,
		ExpectedClosingDate: d.ExpectedClosingDate,
		CreatedAt:           d.CreatedAt,
	}
}
