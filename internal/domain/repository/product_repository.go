package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// ProductRepository define el puerto de acceso al catálogo de productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
}

// InventoryRepository define el puerto de acceso a las existencias.
// SetQuantity sobre un productId sin item es un no-op silencioso.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByProductID(productID string) (*entity.InventoryItem, error)
	SetQuantity(productID string, quantity int) error
	List() ([]*entity.InventoryItem, error)
}
