package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/memory"
)

func newProductUC(seed bool) (*usecase.ProductUseCase, *memory.Store) {
	store := memory.NewStore()
	if seed {
		store.Seed()
	}
	uc := usecase.NewProductUseCase(memory.NewProductRepository(store), memory.NewInventoryRepository(store))
	return uc, store
}

func TestProductCreate_SiembraInventarioEnCero(t *testing.T) {
	uc, store := newProductUC(false)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:     "Soporte Premium",
		Price:    decimal.NewFromInt(900),
		Category: "Services",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	item, err := memory.NewInventoryRepository(store).GetByProductID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, item, "crear producto debe crear su item de inventario")
	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, entity.DefaultLowStockThreshold, item.LowStockThreshold)
}

func TestListInventory_DerivaLowStockEnLectura(t *testing.T) {
	uc, _ := newProductUC(true)

	// Seed: producto 1 con 100 unidades (umbral 10), producto 3 con 5 (umbral 3).
	out, err := uc.ListInventory()
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)

	byProduct := make(map[string]dto.InventoryItemResponse)
	for _, it := range out.Items {
		byProduct[it.ProductID] = it
	}
	assert.False(t, byProduct["1"].LowStock)
	assert.False(t, byProduct["3"].LowStock)
	assert.Equal(t, "CRM Software Pro", byProduct["1"].ProductName)

	// Bajar la cantidad al umbral: el flag cambia en la siguiente lectura,
	// sin ningún paso de recálculo explícito.
	require.NoError(t, uc.UpdateInventory("1", 10))

	out, err = uc.ListInventory()
	require.NoError(t, err)
	for _, it := range out.Items {
		if it.ProductID == "1" {
			assert.True(t, it.LowStock, "cantidad == umbral cuenta como low stock")
		}
	}
}

func TestListInventory_ProductoInexistente_NombreVacio(t *testing.T) {
	uc, store := newProductUC(false)

	// Item huérfano: referencia a un producto que no está en el catálogo.
	require.NoError(t, memory.NewInventoryRepository(store).Create(&entity.InventoryItem{
		ID: "x", ProductID: "borrado", Quantity: 2, LowStockThreshold: 5,
	}))

	out, err := uc.ListInventory()
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Empty(t, out.Items[0].ProductName, "la referencia colgante no falla")
	assert.True(t, out.Items[0].LowStock)
}

func TestUpdateInventory_ProductoSinItem_NoHaceNada(t *testing.T) {
	uc, store := newProductUC(true)

	require.NoError(t, uc.UpdateInventory("producto-sin-item", 50))

	items, err := memory.NewInventoryRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, items, 2, "no debe crearse ningún item nuevo")
}
