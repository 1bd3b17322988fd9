package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// LeadRepository define el puerto de acceso a leads.
// Update sobre un ID inexistente es un no-op silencioso.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	Update(lead *entity.Lead) error
	List() ([]*entity.Lead, error)
}
