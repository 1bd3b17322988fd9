package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// DealRepository define el puerto de acceso a deals.
type DealRepository interface {
	Create(deal *entity.Deal) error
	GetByID(id string) (*entity.Deal, error)
	Update(deal *entity.Deal) error
	List() ([]*entity.Deal, error)
}
