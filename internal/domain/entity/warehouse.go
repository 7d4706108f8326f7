package entity

// Warehouse representa una bodega donde se almacena inventario (multi-bodega).
// Una empresa tiene cero o más bodegas.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
}
