package memory

import (
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación en memoria del puerto LeadRepository.
type LeadRepo struct {
	s *Store
}

// NewLeadRepository construye el adaptador.
func NewLeadRepository(s *Store) *LeadRepo {
	return &LeadRepo{s: s}
}

// Create agrega el lead a la colección.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.leads = appended(r.s.leads, cloneLead(lead))
	return nil
}

// GetByID devuelve el lead o (nil, nil) si no existe.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, l := range r.s.leads {
		if l.ID == id {
			return cloneLead(l), nil
		}
	}
	return nil, nil
}

// Update reemplaza el lead completo en una colección nueva. Si el ID no
// existe es un no-op silencioso.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := make([]*entity.Lead, len(r.s.leads))
	for i, l := range r.s.leads {
		if l.ID == lead.ID {
			next[i] = cloneLead(lead)
		} else {
			next[i] = l
		}
	}
	r.s.leads = next
	return nil
}

// List devuelve el conjunto completo de leads.
func (r *LeadRepo) List() ([]*entity.Lead, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Lead, 0, len(r.s.leads))
	for _, l := range r.s.leads {
		out = append(out, cloneLead(l))
	}
	return out, nil
}
