package service

import (
	"bytes"
	"fmt"
	"time"

	"go-stockroom/internal/repository"

	"github.com/xuri/excelize/v2"
)

type ReportService interface {
	GetDashboardStats() (*repository.DashboardStats, error)
	GetSalesChart(days int) ([]repository.SalesChartPoint, error)
	GetStockMovement(page int) ([]repository.StockMovementRow, int64, error)
	GetInventoryValuation() ([]repository.InventoryValuationRow, error)
	ExportInventoryValuation() (*bytes.Buffer, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.reportRepo.GetDashboardStats()
}

func (s *reportService) GetSalesChart(days int) ([]repository.SalesChartPoint, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)
	return s.reportRepo.GetSalesChart(startDate, endDate)
}

func (s *reportService) GetStockMovement(page int) ([]repository.StockMovementRow, int64, error) {
	return s.reportRepo.GetStockMovement(page, PageSize)
}

func (s *reportService) GetInventoryValuation() ([]repository.InventoryValuationRow, error) {
	return s.reportRepo.GetInventoryValuation()
}

// ExportInventoryValuation renders the valuation report as an XLSX
// workbook ready to stream to the client.
func (s *reportService) ExportInventoryValuation() (*bytes.Buffer, error) {
	rows, err := s.reportRepo.GetInventoryValuation()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory Valuation"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Product", "SKU", "Stock", "Unit Cost", "Value"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		values := []interface{}{
			row.ProductName,
			row.SKU,
			row.Stock,
			row.Cost.InexactFloat64(),
			row.Value.InexactFloat64(),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	// Grand total below the last row
	totalRow := len(rows) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellFormula(sheet, fmt.Sprintf("E%d", totalRow), fmt.Sprintf("SUM(E2:E%d)", totalRow-1))

	return f.WriteToBuffer()
}
