package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo y sus existencias. Crear un
// producto crea también su InventoryItem (cantidad 0, umbral por defecto):
// un item por producto por convención.
type ProductUseCase struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, inventoryRepo repository.InventoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, inventoryRepo: inventoryRepo}
}

// Create registra el producto y su item de inventario inicial.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Description: in.Description,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	item := &entity.InventoryItem{
		ID:                uuid.New().String(),
		ProductID:         product.ID,
		Quantity:          0,
		LowStockThreshold: entity.DefaultLowStockThreshold,
	}
	if err := uc.inventoryRepo.Create(item); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// UpdateInventory fija la cantidad del item del producto al valor dado, tal
// cual (idempotente, sin validar rangos). Silenciosamente no hace nada si el
// producto no tiene item de inventario.
func (uc *ProductUseCase) UpdateInventory(productID string, quantity int) error {
	return uc.inventoryRepo.SetQuantity(productID, quantity)
}

// ListInventory devuelve las existencias con el nombre del producto resuelto
// de forma tolerante (producto inexistente → nombre vacío) y el estado "low
// stock" derivado en el momento de la lectura.
func (uc *ProductUseCase) ListInventory() (*dto.InventoryListResponse, error) {
	inventory, err := uc.inventoryRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	items := make([]dto.InventoryItemResponse, 0, len(inventory))
	for _, it := range inventory {
		items = append(items, dto.InventoryItemResponse{
			ID:                it.ID,
			ProductID:         it.ProductID,
			ProductName:       names[it.ProductID],
			Quantity:          it.Quantity,
			LowStockThreshold: it.LowStockThreshold,
			LowStock:          it.IsLowStock(),
		})
	}
	return &dto.InventoryListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
	}
}
