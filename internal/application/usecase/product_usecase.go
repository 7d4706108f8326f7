package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ProductUseCase alta de productos con su inventario inicial.
type ProductUseCase struct {
	txRunner         TxRunner
	productRepo      repository.ProductRepository
	warehouseRepo    repository.WarehouseRepository
	defaultThreshold int
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	defaultThreshold int,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:         txRunner,
		productRepo:      productRepo,
		warehouseRepo:    warehouseRepo,
		defaultThreshold: defaultThreshold,
	}
}

// Create valida la entrada, verifica que el SKU no exista y guarda producto + inventario en una transacción.
//
// Retorna domain.ErrInvalidInput (campos faltantes o bodega inexistente) y domain.ErrDuplicate (SKU repetido).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	if in.Name == "" || in.SKU == "" || !in.Price.GreaterThan(decimal.Zero) || in.WarehouseID <= 0 {
		return nil, fmt.Errorf("%w: name, sku, price y warehouse_id son requeridos", domain.ErrInvalidInput)
	}
	if in.InitialQuantity < 0 {
		return nil, fmt.Errorf("%w: initial_quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	threshold := uc.defaultThreshold
	if in.StockThreshold != nil {
		threshold = *in.StockThreshold
	}
	if threshold < 0 {
		return nil, fmt.Errorf("%w: stock_threshold no puede ser negativo", domain.ErrInvalidInput)
	}

	wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("producto: obtener bodega: %w", err)
	}
	if wh == nil {
		return nil, fmt.Errorf("%w: la bodega %d no existe", domain.ErrInvalidInput, in.WarehouseID)
	}

	// SKU duplicado se informa como conflicto antes de intentar el insert
	taken, err := uc.productRepo.ExistsBySKU(ctx, in.SKU)
	if err != nil {
		return nil, fmt.Errorf("producto: verificar sku: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: ya existe un producto con SKU '%s'", domain.ErrDuplicate, in.SKU)
	}

	now := time.Now()
	product := &entity.Product{
		Name:           in.Name,
		SKU:            in.SKU,
		Price:          in.Price,
		StockThreshold: threshold,
		CreatedAt:      now,
	}
	err = uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, inventoryRepo repository.InventoryRepository) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return inventoryRepo.Create(ctx, &entity.Inventory{
			ProductID:   product.ID,
			WarehouseID: in.WarehouseID,
			Quantity:    in.InitialQuantity,
			UpdatedAt:   now,
		})
	})
	if err != nil {
		// Carrera entre la verificación y el insert: el índice único responde
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: ya existe un producto con SKU '%s'", domain.ErrDuplicate, in.SKU)
		}
		return nil, fmt.Errorf("producto: crear: %w", err)
	}

	return &dto.CreateProductResponse{
		Success:   true,
		Message:   "Product created successfully",
		ProductID: product.ID,
	}, nil
}
