package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Junto con el producto
// se crea su InventoryItem con cantidad 0 y umbral por defecto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// UpdateInventoryRequest fija la cantidad de existencias de un producto.
// No hay validación de rango: el valor se acepta tal cual.
type UpdateInventoryRequest struct {
	Quantity int `json:"quantity"`
}

// InventoryItemResponse salida de un item de inventario. LowStock es estado
// derivado, recalculado en cada lectura.
type InventoryItemResponse struct {
	ID                string `json:"id"`
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name,omitempty"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	LowStock          bool   `json:"low_stock"`
}

// InventoryListResponse lista de existencias.
type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Total int                     `json:"total"`
}
