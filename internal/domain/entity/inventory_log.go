package entity

import "time"

// Motivos de un movimiento en el libro de inventario.
const (
	LogReasonSale       = "sale"
	LogReasonRestock    = "restock"
	LogReasonAdjustment = "adjustment"
	LogReasonTransfer   = "transfer"
)

// InventoryLog es una entrada append-only del libro de movimientos.
// Para las alertas solo importa que exista una venta (Reason == "sale") reciente.
type InventoryLog struct {
	ID             int64
	ProductID      int64
	WarehouseID    int64
	Reason         string
	QuantityChange int
	CreatedAt      time.Time
}

// Key devuelve el par producto+bodega del movimiento.
func (l InventoryLog) Key() StockKey {
	return StockKey{ProductID: l.ProductID, WarehouseID: l.WarehouseID}
}
