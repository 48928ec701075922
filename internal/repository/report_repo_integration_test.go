package repository_test

import (
	"testing"
	"time"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepo_DashboardStats(t *testing.T) {
	db := setupTestDB(t)
	customer, product := seedOrderFixtures(t, db)
	orders := repository.NewOrderRepo(db)
	reports := repository.NewReportRepo(db)

	require.NoError(t, orders.Create(saleOrder(customer, product, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))))

	stats, err := reports.GetDashboardStats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalProducts)
	assert.EqualValues(t, 1, stats.TotalCustomers)
	assert.EqualValues(t, 0, stats.TotalSuppliers)
	assert.EqualValues(t, 1, stats.PendingOrders)
	assert.True(t, stats.TotalSales.Equal(decimal.NewFromFloat(21.20)),
		"total sales = %s", stats.TotalSales)
	assert.True(t, stats.InventoryValue.Equal(decimal.NewFromFloat(600.00)),
		"inventory value = %s", stats.InventoryValue)
}

// A failing count query must surface as an error rather than leaving
// its stat silently at zero.
func TestReportRepo_DashboardStatsSurfacesQueryErrors(t *testing.T) {
	db := setupTestDB(t)
	reports := repository.NewReportRepo(db)

	require.NoError(t, db.Migrator().DropTable(&model.Supplier{}))

	_, err := reports.GetDashboardStats()
	assert.Error(t, err)
}
