// seed_demo carga datos de demostración para probar las alertas de bajo stock a mano.
//
// Uso: go run ./cmd/seed_demo
// Usa la misma configuración que la API (DATABASE_URL o DB_*). Aplica las migraciones antes de insertar.
//
// Resultado esperado en GET /api/companies/<id>/alerts/low-stock de la empresa "Demo Retail":
//   - "Teclado mecánico" en Bodega Central: 5 unidades, umbral 10, proveedor con email.
//   - "Cable USB-C" en Bodega Norte: 0 unidades, sin proveedor (supplier: null).
//   - "Mouse inalámbrico" queda fuera: está bajo umbral pero no vende hace más de 30 días.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

type demoProduct struct {
	name      string
	sku       string
	price     string
	threshold int
	warehouse int // índice en warehouses
	quantity  int
	lastSale  time.Duration // 0 = sin ventas
	supplier  int           // índice en suppliers, -1 = sin proveedor
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "seed_demo"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("iniciar transacción")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyID, err := insertID(ctx, tx, `INSERT INTO companies (name) VALUES ($1) RETURNING id`, "Demo Retail")
	if err != nil {
		log.Fatal().Err(err).Msg("insertar empresa")
	}
	// Empresa sin bodegas: responde {alerts: [], total_alerts: 0}
	emptyID, err := insertID(ctx, tx, `INSERT INTO companies (name) VALUES ($1) RETURNING id`, "Demo Sin Bodegas")
	if err != nil {
		log.Fatal().Err(err).Msg("insertar empresa")
	}

	warehouses := []string{"Bodega Central", "Bodega Norte"}
	warehouseIDs := make([]int64, len(warehouses))
	for i, name := range warehouses {
		warehouseIDs[i], err = insertID(ctx, tx,
			`INSERT INTO warehouses (company_id, name) VALUES ($1, $2) RETURNING id`, companyID, name)
		if err != nil {
			log.Fatal().Err(err).Str("warehouse", name).Msg("insertar bodega")
		}
	}

	suppliers := []struct{ name, email string }{
		{"Acme Distribuciones", "pedidos@acme.example"},
		{"Importadora Andina", ""},
	}
	supplierIDs := make([]int64, len(suppliers))
	for i, s := range suppliers {
		var email *string
		if s.email != "" {
			email = &s.email
		}
		supplierIDs[i], err = insertID(ctx, tx,
			`INSERT INTO suppliers (name, contact_email) VALUES ($1, $2) RETURNING id`, s.name, email)
		if err != nil {
			log.Fatal().Err(err).Str("supplier", s.name).Msg("insertar proveedor")
		}
	}

	now := time.Now()
	products := []demoProduct{
		{"Teclado mecánico", "DEMO-KB-01", "189900", 10, 0, 5, 3 * 24 * time.Hour, 0},
		{"Cable USB-C", "DEMO-USB-C", "25000", 8, 1, 0, 6 * time.Hour, -1},
		{"Mouse inalámbrico", "DEMO-MS-02", "79900", 15, 0, 4, 45 * 24 * time.Hour, 1},
		{"Monitor 27", "DEMO-MN-27", "1250000", 3, 0, 12, 24 * time.Hour, 1},
	}
	for _, p := range products {
		productID, err := insertID(ctx, tx,
			`INSERT INTO products (name, sku, price, stock_threshold) VALUES ($1, $2, $3, $4) RETURNING id`,
			p.name, p.sku, decimal.RequireFromString(p.price), p.threshold)
		if err != nil {
			log.Fatal().Err(err).Str("sku", p.sku).Msg("insertar producto")
		}
		warehouseID := warehouseIDs[p.warehouse]
		if _, err := tx.Exec(ctx,
			`INSERT INTO inventory (product_id, warehouse_id, quantity) VALUES ($1, $2, $3)`,
			productID, warehouseID, p.quantity); err != nil {
			log.Fatal().Err(err).Str("sku", p.sku).Msg("insertar inventario")
		}
		if p.lastSale > 0 {
			if _, err := tx.Exec(ctx,
				`INSERT INTO inventory_logs (product_id, warehouse_id, reason, quantity_change, created_at) VALUES ($1, $2, $3, $4, $5)`,
				productID, warehouseID, entity.LogReasonSale, -1, now.Add(-p.lastSale)); err != nil {
				log.Fatal().Err(err).Str("sku", p.sku).Msg("insertar movimiento")
			}
		}
		if p.supplier >= 0 {
			if _, err := tx.Exec(ctx,
				`INSERT INTO supplier_products (supplier_id, product_id) VALUES ($1, $2)`,
				supplierIDs[p.supplier], productID); err != nil {
				log.Fatal().Err(err).Str("sku", p.sku).Msg("vincular proveedor")
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("commit")
	}

	log.Info().
		Int64("company_id", companyID).
		Int64("empty_company_id", emptyID).
		Int("products", len(products)).
		Msg("datos de demostración cargados")
	fmt.Printf("GET /api/companies/%d/alerts/low-stock\n", companyID)
}

func insertID(ctx context.Context, tx pgx.Tx, query string, args ...any) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, query, args...).Scan(&id)
	return id, err
}
