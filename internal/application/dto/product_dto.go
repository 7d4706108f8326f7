package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /products.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	WarehouseID     int64           `json:"warehouse_id"`
	InitialQuantity int             `json:"initial_quantity"`
	StockThreshold  *int            `json:"stock_threshold,omitempty"` // nil = umbral por defecto
}

// CreateProductResponse respuesta de POST /products (éxito y error comparten forma).
type CreateProductResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProductID int64  `json:"product_id,omitempty"`
}
