package entity

import "github.com/shopspring/decimal"

// Product representa un producto o servicio del catálogo. El stock se maneja
// aparte en InventoryItem (uno por producto, creado al crear el producto).
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal // precio de venta, >= 0
	Category    string          // texto libre: Software, Services...
	Description string
}
