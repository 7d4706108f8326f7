package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/infrastructure/cache"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// unreachableClient apunta a un puerto cerrado: cada operación falla rápido.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewRedisClient_URLInvalida(t *testing.T) {
	_, err := cache.NewRedisClient(context.Background(), "no-es-una-url")
	assert.Error(t, err)
}

func TestCompanyCache_SinRedisLeeDelRepositorio(t *testing.T) {
	store := memory.NewStore()
	companyID := store.AddCompany("Acme")

	c := cache.NewCompanyCache(store.Companies(), unreachableClient(t), time.Minute, logger.Nop())

	ok, err := c.Exists(context.Background(), companyID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Exists(context.Background(), companyID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWarehouseCache_SinRedisLeeDelRepositorio(t *testing.T) {
	store := memory.NewStore()
	companyID := store.AddCompany("Acme")
	w1 := store.AddWarehouse(companyID, "Central")
	w2 := store.AddWarehouse(companyID, "Norte")

	c := cache.NewWarehouseCache(store.Warehouses(), unreachableClient(t), time.Minute, logger.Nop())

	list, err := c.ListByCompany(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, w1, list[0].ID)
	assert.Equal(t, w2, list[1].ID)

	w, err := c.GetByID(context.Background(), w2)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, "Norte", w.Name)

	missing, err := c.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
