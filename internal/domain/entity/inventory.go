package entity

import "time"

// Inventory es el stock actual de un producto en una bodega (una fila por par producto+bodega).
type Inventory struct {
	ProductID   int64
	WarehouseID int64
	Quantity    int
	UpdatedAt   time.Time
}

// StockKey identifica un par (producto, bodega).
type StockKey struct {
	ProductID   int64
	WarehouseID int64
}

// Key devuelve el par producto+bodega de la fila.
func (i Inventory) Key() StockKey {
	return StockKey{ProductID: i.ProductID, WarehouseID: i.WarehouseID}
}
