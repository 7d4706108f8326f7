package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// StockThreshold es la cantidad mínima aceptable por bodega; quedar por debajo en cualquier bodega
// genera un candidato a alerta.
type Product struct {
	ID             int64
	Name           string
	SKU            string // único global
	Price          decimal.Decimal
	StockThreshold int
	CreatedAt      time.Time
}
