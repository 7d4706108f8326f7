package stockalert_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/stockalert"
)

var asOf = time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

func TestIsBreach_EstrictamenteMenor(t *testing.T) {
	assert.True(t, stockalert.IsBreach(5, 10))
	assert.True(t, stockalert.IsBreach(0, 1))
	assert.False(t, stockalert.IsBreach(10, 10), "igual al umbral no es quiebre")
	assert.False(t, stockalert.IsBreach(11, 10))
}

func TestDaysUntilStockout_DivisionEntera(t *testing.T) {
	p := stockalert.DefaultPolicy()

	cases := map[int]int{0: 0, 1: 0, 2: 1, 5: 2, 9: 4, 100: 50}
	for stock, want := range cases {
		assert.Equal(t, want, p.DaysUntilStockout(stock), "stock=%d", stock)
	}
	assert.Equal(t, 0, p.DaysUntilStockout(-3), "stock negativo no produce días negativos")
}

func TestDaysUntilStockout_TasaConfigurable(t *testing.T) {
	p := stockalert.Policy{DailySalesRate: 3, ActivityWindow: time.Hour}
	assert.Equal(t, 3, p.DaysUntilStockout(11))
}

func TestIsRecentSale_Ventana(t *testing.T) {
	p := stockalert.DefaultPolicy()
	sale := func(at time.Time) entity.InventoryLog {
		return entity.InventoryLog{ProductID: 1, WarehouseID: 1, Reason: entity.LogReasonSale, CreatedAt: at}
	}

	assert.True(t, p.IsRecentSale(sale(asOf.AddDate(0, 0, -3)), asOf))
	assert.True(t, p.IsRecentSale(sale(asOf.Add(-p.ActivityWindow)), asOf), "el límite inferior es inclusivo")
	assert.True(t, p.IsRecentSale(sale(asOf), asOf), "una venta en el instante de la consulta cuenta")
	assert.False(t, p.IsRecentSale(sale(asOf.AddDate(0, 0, -31)), asOf))

	restock := sale(asOf.AddDate(0, 0, -1))
	restock.Reason = entity.LogReasonRestock
	assert.False(t, p.IsRecentSale(restock, asOf), "solo las ventas cuentan como actividad")
}

func TestPickSupplier_MenorID(t *testing.T) {
	assert.Nil(t, stockalert.PickSupplier(nil))

	got := stockalert.PickSupplier([]entity.Supplier{{ID: 7, Name: "Zeta"}, {ID: 3, Name: "Beta"}, {ID: 5, Name: "Acme"}})
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "Beta", got.Name)
}

func TestPolicy_Validate(t *testing.T) {
	assert.NoError(t, stockalert.DefaultPolicy().Validate())
	assert.Error(t, stockalert.Policy{DailySalesRate: 0, ActivityWindow: time.Hour}.Validate())
	assert.Error(t, stockalert.Policy{DailySalesRate: 2, ActivityWindow: 0}.Validate())
}
