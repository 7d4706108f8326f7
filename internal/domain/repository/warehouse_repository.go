package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	// ListByCompany devuelve todas las bodegas de la empresa (slice vacío si no tiene).
	ListByCompany(ctx context.Context, companyID int64) ([]entity.Warehouse, error)
	// GetByID devuelve nil, nil si la bodega no existe.
	GetByID(ctx context.Context, id int64) (*entity.Warehouse, error)
}
