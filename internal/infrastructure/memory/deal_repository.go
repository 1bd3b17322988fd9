package memory

import (
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.DealRepository = (*DealRepo)(nil)

// DealRepo implementación en memoria del puerto DealRepository.
type DealRepo struct {
	s *Store
}

// NewDealRepository construye el adaptador.
func NewDealRepository(s *Store) *DealRepo {
	return &DealRepo{s: s}
}

// Create agrega el deal a la colección.
func (r *DealRepo) Create(deal *entity.Deal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deals = appended(r.s.deals, cloneDeal(deal))
	return nil
}

// GetByID devuelve el deal o (nil, nil) si no existe.
func (r *DealRepo) GetByID(id string) (*entity.Deal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, d := range r.s.deals {
		if d.ID == id {
			return cloneDeal(d), nil
		}
	}
	return nil, nil
}

// Update reemplaza el deal completo; no-op silencioso si el ID no existe.
func (r *DealRepo) Update(deal *entity.Deal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := make([]*entity.Deal, len(r.s.deals))
	for i, d := range r.s.deals {
		if d.ID == deal.ID {
			next[i] = cloneDeal(deal)
		} else {
			next[i] = d
		}
	}
	r.s.deals = next
	return nil
}

// List devuelve el conjunto completo de deals.
func (r *DealRepo) List() ([]*entity.Deal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Deal, 0, len(r.s.deals))
	for _, d := range r.s.deals {
		out = append(out, cloneDeal(d))
	}
	return out, nil
}
