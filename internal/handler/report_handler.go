package handler

import (
	"strconv"

	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetDashboardStats returns overview statistics
func (h *ReportHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// GetSalesChart returns per-day sales totals and order counts.
// Query params: days (default 7)
func (h *ReportHandler) GetSalesChart(c *fiber.Ctx) error {
	daysStr := c.Query("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.GetSalesChart(days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales chart"})
	}
	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

// GetStockMovement returns the flattened order-item feed. It is a
// re-projection of order history, not a stock ledger.
func (h *ReportHandler) GetStockMovement(c *fiber.Ctx) error {
	page := pageParam(c)
	rows, total, err := h.service.GetStockMovement(page)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stock movement"})
	}
	return pagedResponse(c, rows, page, total)
}

func (h *ReportHandler) GetInventoryValuation(c *fiber.Ctx) error {
	rows, err := h.service.GetInventoryValuation()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inventory valuation"})
	}
	return c.JSON(rows)
}

// ExportInventoryValuation streams the valuation report as an XLSX file.
func (h *ReportHandler) ExportInventoryValuation(c *fiber.Ctx) error {
	buf, err := h.service.ExportInventoryValuation()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export inventory valuation"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventory-valuation.xlsx"`)
	return c.Send(buf.Bytes())
}
