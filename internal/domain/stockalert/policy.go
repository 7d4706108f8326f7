// Package stockalert contiene las reglas de negocio de las alertas de bajo stock:
// qué es un quiebre de umbral, cuándo un producto se considera activo, cómo se estima
// el quiebre de stock y qué proveedor se sugiere para reordenar.
package stockalert

import (
	"fmt"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// Valores por defecto de la política.
const (
	DefaultDailySalesRate = 2
	DefaultActivityWindow = 30 * 24 * time.Hour
)

// Policy agrupa los parámetros configurables de la estimación.
// DailySalesRate es una simplificación (tasa constante), no un pronóstico.
type Policy struct {
	DailySalesRate int
	ActivityWindow time.Duration
}

// DefaultPolicy devuelve la política con 2 unidades/día y ventana de 30 días.
func DefaultPolicy() Policy {
	return Policy{DailySalesRate: DefaultDailySalesRate, ActivityWindow: DefaultActivityWindow}
}

// Validate verifica que la política sea utilizable.
func (p Policy) Validate() error {
	if p.DailySalesRate <= 0 {
		return fmt.Errorf("tasa diaria de ventas debe ser > 0 (actual %d)", p.DailySalesRate)
	}
	if p.ActivityWindow <= 0 {
		return fmt.Errorf("ventana de actividad debe ser > 0 (actual %s)", p.ActivityWindow)
	}
	return nil
}

// IsBreach informa si la cantidad está estrictamente por debajo del umbral.
func IsBreach(quantity, threshold int) bool {
	return quantity < threshold
}

// ActivitySince devuelve el límite inferior (inclusivo) de la ventana de ventas recientes.
func (p Policy) ActivitySince(asOf time.Time) time.Time {
	return asOf.Add(-p.ActivityWindow)
}

// IsRecentSale informa si un movimiento cuenta para la compuerta de actividad:
// debe ser una venta con created_at >= asOf - ActivityWindow.
func (p Policy) IsRecentSale(log entity.InventoryLog, asOf time.Time) bool {
	return IsSaleSince(log, p.ActivitySince(asOf))
}

// IsSaleSince informa si el movimiento es una venta con created_at >= since.
func IsSaleSince(log entity.InventoryLog, since time.Time) bool {
	return log.Reason == entity.LogReasonSale && !log.CreatedAt.Before(since)
}

// DaysUntilStockout = floor(stock / DailySalesRate). Stock cero o negativo ya está en quiebre: 0.
func (p Policy) DaysUntilStockout(currentStock int) int {
	if currentStock <= 0 || p.DailySalesRate <= 0 {
		return 0
	}
	return currentStock / p.DailySalesRate
}

// PickSupplier elige el proveedor de menor id; nil si no hay ninguno.
func PickSupplier(suppliers []entity.Supplier) *entity.Supplier {
	if len(suppliers) == 0 {
		return nil
	}
	best := suppliers[0]
	for _, s := range suppliers[1:] {
		if s.ID < best.ID {
			best = s
		}
	}
	return &best
}
