package dto

// SupplierSummary proveedor sugerido para reordenar.
type SupplierSummary struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LowStockAlert alerta de bajo stock para un par producto+bodega.
// Es una proyección calculada en cada petición; no se persiste.
type LowStockAlert struct {
	ProductID         int64            `json:"product_id"`
	ProductName       string           `json:"product_name"`
	SKU               string           `json:"sku"`
	WarehouseID       int64            `json:"warehouse_id"`
	WarehouseName     string           `json:"warehouse_name"`
	CurrentStock      int              `json:"current_stock"`
	Threshold         int              `json:"threshold"`
	DaysUntilStockout int              `json:"days_until_stockout"`
	Supplier          *SupplierSummary `json:"supplier"` // null si el producto no tiene proveedores
}

// LowStockAlertsResponse respuesta de GET /api/companies/{company_id}/alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}

// NewLowStockAlertsResponse arma la respuesta; TotalAlerts siempre es len(Alerts).
func NewLowStockAlertsResponse(alerts []LowStockAlert) *LowStockAlertsResponse {
	if alerts == nil {
		alerts = []LowStockAlert{}
	}
	return &LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}
}
