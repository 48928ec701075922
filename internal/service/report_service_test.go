package service_test

import (
	"testing"
	"time"

	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeReportRepo struct {
	valuation []repository.InventoryValuationRow
}

func (r *fakeReportRepo) GetDashboardStats() (*repository.DashboardStats, error) {
	return &repository.DashboardStats{}, nil
}

func (r *fakeReportRepo) GetSalesChart(startDate, endDate time.Time) ([]repository.SalesChartPoint, error) {
	return nil, nil
}

func (r *fakeReportRepo) GetStockMovement(page, pageSize int) ([]repository.StockMovementRow, int64, error) {
	return nil, 0, nil
}

func (r *fakeReportRepo) GetInventoryValuation() ([]repository.InventoryValuationRow, error) {
	return r.valuation, nil
}

func TestExportInventoryValuation(t *testing.T) {
	repo := &fakeReportRepo{
		valuation: []repository.InventoryValuationRow{
			{ProductName: "Widget A", SKU: "WID-A", Stock: 10, Cost: decimal.NewFromFloat(6.00), Value: decimal.NewFromFloat(60.00)},
			{ProductName: "Widget B", SKU: "WID-B", Stock: 2, Cost: decimal.NewFromFloat(12.50), Value: decimal.NewFromFloat(25.00)},
		},
	}
	svc := service.NewReportService(repo)

	buf, err := svc.ExportInventoryValuation()
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Inventory Valuation"

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Product", header)

	name, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Widget A", name)

	sku, err := f.GetCellValue(sheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "WID-B", sku)

	value, err := f.GetCellValue(sheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "60", value)

	totalLabel, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", totalLabel)
}
