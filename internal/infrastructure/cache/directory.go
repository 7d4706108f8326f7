package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

const (
	keyPrefix           = "stockflow:"
	companyExistsPrefix = keyPrefix + "company:exists:"
	warehousesPrefix    = keyPrefix + "company:warehouses:"
	warehousePrefix     = keyPrefix + "warehouse:"
)

var (
	_ repository.CompanyRepository   = (*CompanyCache)(nil)
	_ repository.WarehouseRepository = (*WarehouseCache)(nil)
)

// CompanyCache decora un CompanyRepository con lectura a través de Redis.
// Solo se cachean existencias positivas: una empresa recién creada se ve de inmediato.
// Si Redis falla se consulta el repositorio y se registra un warning.
type CompanyCache struct {
	inner  repository.CompanyRepository
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewCompanyCache construye el decorador.
func NewCompanyCache(inner repository.CompanyRepository, client *redis.Client, ttl time.Duration, log *logger.Logger) *CompanyCache {
	return &CompanyCache{inner: inner, client: client, ttl: ttl, log: log.Named("cache")}
}

// Exists consulta Redis y, si no hay entrada, el repositorio.
func (c *CompanyCache) Exists(ctx context.Context, id int64) (bool, error) {
	key := fmt.Sprintf("%s%d", companyExistsPrefix, id)
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("redis no disponible, leyendo de la base")
	} else if n > 0 {
		return true, nil
	}

	exists, err := c.inner.Exists(ctx, id)
	if err != nil || !exists {
		return exists, err
	}
	if err := c.client.Set(ctx, key, 1, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("no se pudo escribir en caché")
	}
	return true, nil
}

// WarehouseCache decora un WarehouseRepository con lectura a través de Redis.
type WarehouseCache struct {
	inner  repository.WarehouseRepository
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewWarehouseCache construye el decorador.
func NewWarehouseCache(inner repository.WarehouseRepository, client *redis.Client, ttl time.Duration, log *logger.Logger) *WarehouseCache {
	return &WarehouseCache{inner: inner, client: client, ttl: ttl, log: log.Named("cache")}
}

// ListByCompany devuelve las bodegas de la empresa desde caché o desde el repositorio.
func (c *WarehouseCache) ListByCompany(ctx context.Context, companyID int64) ([]entity.Warehouse, error) {
	key := fmt.Sprintf("%s%d", warehousesPrefix, companyID)
	var cached []entity.Warehouse
	if c.get(ctx, key, &cached) {
		return cached, nil
	}

	list, err := c.inner.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, list)
	return list, nil
}

// GetByID devuelve la bodega desde caché o desde el repositorio. Las bodegas inexistentes no se cachean.
func (c *WarehouseCache) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	key := fmt.Sprintf("%s%d", warehousePrefix, id)
	var cached entity.Warehouse
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	w, err := c.inner.GetByID(ctx, id)
	if err != nil || w == nil {
		return w, err
	}
	c.set(ctx, key, w)
	return w, nil
}

// get devuelve true solo si encontró y decodificó la entrada.
func (c *WarehouseCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("redis no disponible, leyendo de la base")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("entrada de caché corrupta")
		return false
	}
	return true
}

func (c *WarehouseCache) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("no se pudo escribir en caché")
	}
}
