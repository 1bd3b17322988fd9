package memory

import (
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var (
	_ repository.ProductRepository   = (*ProductRepo)(nil)
	_ repository.InventoryRepository = (*InventoryRepo)(nil)
)

// ProductRepo implementación en memoria del puerto ProductRepository.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el adaptador.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products = appended(r.s.products, cloneProduct(product))
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

// InventoryRepo implementación en memoria del puerto InventoryRepository.
type InventoryRepo struct {
	s *Store
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(s *Store) *InventoryRepo {
	return &InventoryRepo{s: s}
}

func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.inventory = appended(r.s.inventory, cloneInventoryItem(item))
	return nil
}

// GetByProductID devuelve el item del producto o (nil, nil). Hay un item por
// producto por convención; se devuelve el primero que coincida.
func (r *InventoryRepo) GetByProductID(productID string) (*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, it := range r.s.inventory {
		if it.ProductID == productID {
			return cloneInventoryItem(it), nil
		}
	}
	return nil, nil
}

// SetQuantity fija la cantidad tal cual (sin validar rangos: valores negativos
// o enormes se aceptan). No-op silencioso si el producto no tiene item.
func (r *InventoryRepo) SetQuantity(productID string, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := make([]*entity.InventoryItem, len(r.s.inventory))
	for i, it := range r.s.inventory {
		if it.ProductID == productID {
			cp := cloneInventoryItem(it)
			cp.Quantity = quantity
			next[i] = cp
		} else {
			next[i] = it
		}
	}
	r.s.inventory = next
	return nil
}

func (r *InventoryRepo) List() ([]*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.InventoryItem, 0, len(r.s.inventory))
	for _, it := range r.s.inventory {
		out = append(out, cloneInventoryItem(it))
	}
	return out, nil
}
