package repository

import (
	"time"

	"go-stockroom/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportRepository interface {
	GetDashboardStats() (*DashboardStats, error)
	GetSalesChart(startDate, endDate time.Time) ([]SalesChartPoint, error)
	GetStockMovement(page, pageSize int) ([]StockMovementRow, int64, error)
	GetInventoryValuation() ([]InventoryValuationRow, error)
}

// DashboardStats is the overview block for the dashboard page.
type DashboardStats struct {
	TotalProducts   int64           `json:"total_products"`
	TotalCustomers  int64           `json:"total_customers"`
	TotalSuppliers  int64           `json:"total_suppliers"`
	LowStockCount   int64           `json:"low_stock_count"`
	PendingOrders   int64           `json:"pending_orders"`
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalPurchases  decimal.Decimal `json:"total_purchases"`
	InventoryValue  decimal.Decimal `json:"inventory_value"`
}

// SalesChartPoint is one day of the trailing sales window.
type SalesChartPoint struct {
	Date   string          `json:"date"`
	Total  decimal.Decimal `json:"total"`
	Orders int64           `json:"orders"`
}

// StockMovementRow is a flattened order line item. This feed is a
// re-projection of order history, not a ledger of actual stock changes.
type StockMovementRow struct {
	OrderNumber string          `json:"order_number"`
	OrderType   string          `json:"order_type"`
	OrderDate   time.Time       `json:"order_date"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type InventoryValuationRow struct {
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Stock       int             `json:"stock"`
	Cost        decimal.Decimal `json:"cost"`
	Value       decimal.Decimal `json:"value"`
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

func (r *reportRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{r.db.Model(&model.Product{}), &stats.TotalProducts},
		{r.db.Model(&model.Customer{}), &stats.TotalCustomers},
		{r.db.Model(&model.Supplier{}), &stats.TotalSuppliers},
		{r.db.Model(&model.Product{}).
			Where("stock <= min_stock_level AND is_active = ?", true), &stats.LowStockCount},
		{r.db.Model(&model.Order{}).Where("status = ?", model.StatusPending), &stats.PendingOrders},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := r.db.Model(&model.Order{}).
		Where("type = ?", model.OrderTypeSale).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalSales).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Order{}).
		Where("type = ?", model.OrderTypePurchase).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalPurchases).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(stock * cost), 0)").
		Scan(&stats.InventoryValue).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *reportRepo) GetSalesChart(startDate, endDate time.Time) ([]SalesChartPoint, error) {
	var results []SalesChartPoint

	rows, err := r.db.Model(&model.Order{}).
		Select(`
			TO_CHAR(order_date, 'YYYY-MM-DD') as date,
			COALESCE(SUM(total), 0) as total,
			COUNT(*) as orders
		`).
		Where("type = ? AND order_date BETWEEN ? AND ?", model.OrderTypeSale, startDate, endDate).
		Group("order_date").
		Order("order_date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var point SalesChartPoint
		if err := rows.Scan(&point.Date, &point.Total, &point.Orders); err != nil {
			return nil, err
		}
		results = append(results, point)
	}
	return results, rows.Err()
}

func (r *reportRepo) GetStockMovement(page, pageSize int) ([]StockMovementRow, int64, error) {
	var results []StockMovementRow
	var total int64

	base := r.db.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.deleted_at IS NULL").
		Joins("JOIN products ON products.id = order_items.product_id")

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Select(`
			orders.order_number,
			orders.type as order_type,
			orders.order_date,
			products.name as product_name,
			products.sku,
			order_items.quantity,
			order_items.unit_price,
			order_items.total
		`).
		Order("orders.order_date DESC, orders.order_number DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Scan(&results).Error
	return results, total, err
}

func (r *reportRepo) GetInventoryValuation() ([]InventoryValuationRow, error) {
	var results []InventoryValuationRow
	err := r.db.Model(&model.Product{}).
		Select(`
			name as product_name,
			sku,
			stock,
			cost,
			(stock * cost) as value
		`).
		Order("name ASC").
		Scan(&results).Error
	return results, err
}
