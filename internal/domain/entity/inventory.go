package entity

// DefaultLowStockThreshold umbral asignado al InventoryItem que se crea
// automáticamente junto con cada producto nuevo.
const DefaultLowStockThreshold = 5

// InventoryItem representa la existencia de un producto (un item por producto
// por convención). Quantity se acepta tal cual, sin validar rangos.
type InventoryItem struct {
	ID                string
	ProductID         string
	Quantity          int
	LowStockThreshold int
}

// IsLowStock estado derivado, nunca almacenado: se recalcula en cada lectura.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}
