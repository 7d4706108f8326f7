package entity

// Supplier proveedor vinculado a productos vía supplier_products (muchos a muchos).
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail *string // puede ser NULL
}
