package service

import (
	"errors"
	"fmt"
	"time"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/ws"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type OrderService interface {
	CreateOrder(req *model.OrderRequest) (*model.Order, error)
	UpdateOrder(id uuid.UUID, req *model.OrderRequest) (*model.Order, error)
	DeleteOrder(id uuid.UUID) error
	GetOrder(id uuid.UUID) (*model.Order, error)
	ListOrders(orderType, status string, page int) ([]model.Order, int64, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
	wsHub        *ws.Hub
}

func NewOrderService(
	oRepo repository.OrderRepository,
	pRepo repository.ProductRepository,
	cRepo repository.CustomerRepository,
	sRepo repository.SupplierRepository,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		orderRepo:    oRepo,
		productRepo:  pRepo,
		customerRepo: cRepo,
		supplierRepo: sRepo,
		wsHub:        hub,
	}
}

func (s *orderService) CreateOrder(req *model.OrderRequest) (*model.Order, error) {
	if errs := validator.Errors(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.checkCounterpart(req); err != nil {
		return nil, err
	}

	orderDate, deliveryDate, err := parseDates(req)
	if err != nil {
		return nil, err
	}

	items, subtotal, err := s.buildItems(req)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		Type:         req.Type,
		Status:       model.StatusPending,
		CustomerID:   req.CustomerID,
		SupplierID:   req.SupplierID,
		Subtotal:     subtotal,
		TaxAmount:    req.TaxAmount,
		Total:        req.Total,
		OrderDate:    orderDate,
		DeliveryDate: deliveryDate,
		Notes:        req.Notes,
		Items:        items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.EventOrderCreated, orderEvent(order))
	return order, nil
}

func (s *orderService) UpdateOrder(id uuid.UUID, req *model.OrderRequest) (*model.Order, error) {
	existing, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if errs := validator.Errors(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	// Order type is immutable after creation
	if req.Type != existing.Type {
		return nil, newValidationError("type", "cannot be changed after creation")
	}
	if req.Status != "" && !existing.Type.ValidStatus(req.Status) {
		return nil, newValidationError("status",
			fmt.Sprintf("must be one of %v for %s orders", existing.Type.Statuses(), existing.Type))
	}
	if err := s.checkCounterpart(req); err != nil {
		return nil, err
	}

	orderDate, deliveryDate, err := parseDates(req)
	if err != nil {
		return nil, err
	}

	items, subtotal, err := s.buildItems(req)
	if err != nil {
		return nil, err
	}

	existing.CustomerID = req.CustomerID
	existing.SupplierID = req.SupplierID
	existing.Subtotal = subtotal
	existing.TaxAmount = req.TaxAmount
	existing.Total = req.Total
	existing.OrderDate = orderDate
	existing.DeliveryDate = deliveryDate
	existing.Notes = req.Notes
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.Customer = nil
	existing.Supplier = nil

	if err := s.orderRepo.Replace(existing, items); err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.EventOrderUpdated, orderEvent(existing))
	return existing, nil
}

func (s *orderService) DeleteOrder(id uuid.UUID) error {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.orderRepo.Delete(order.ID); err != nil {
		return err
	}
	s.wsHub.Publish(ws.EventOrderDeleted, orderEvent(order))
	return nil
}

func (s *orderService) GetOrder(id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(orderType, status string, page int) ([]model.Order, int64, error) {
	return s.orderRepo.FindAll(orderType, status, page, PageSize)
}

// checkCounterpart enforces the customer-XOR-supplier rule and verifies
// the referenced record exists and is active.
func (s *orderService) checkCounterpart(req *model.OrderRequest) error {
	switch req.Type {
	case model.OrderTypeSale:
		if req.CustomerID == nil {
			return newValidationError("customer_id", "is required for sale orders")
		}
		if req.SupplierID != nil {
			return newValidationError("supplier_id", "must not be set on sale orders")
		}
		customer, err := s.customerRepo.FindByID(*req.CustomerID)
		if err != nil {
			return newValidationError("customer_id", "customer not found")
		}
		if !customer.IsActive {
			return newValidationError("customer_id", "customer is inactive")
		}
	case model.OrderTypePurchase:
		if req.SupplierID == nil {
			return newValidationError("supplier_id", "is required for purchase orders")
		}
		if req.CustomerID != nil {
			return newValidationError("customer_id", "must not be set on purchase orders")
		}
		supplier, err := s.supplierRepo.FindByID(*req.SupplierID)
		if err != nil {
			return newValidationError("supplier_id", "supplier not found")
		}
		if !supplier.IsActive {
			return newValidationError("supplier_id", "supplier is inactive")
		}
	}
	return nil
}

// buildItems resolves every product reference and recomputes line
// totals and the subtotal. Client-submitted line totals are never
// trusted; tax_amount and total are stored as provided.
func (s *orderService) buildItems(req *model.OrderRequest) ([]model.OrderItem, decimal.Decimal, error) {
	items := make([]model.OrderItem, 0, len(req.Items))
	subtotal := decimal.Zero

	for i, itemReq := range req.Items {
		price := itemReq.Price(req.Type)
		if price.IsNegative() {
			return nil, decimal.Zero, newValidationError(
				fmt.Sprintf("items[%d].unit_price", i), "must be 0 or greater")
		}
		if _, err := s.productRepo.FindByID(itemReq.ProductID); err != nil {
			return nil, decimal.Zero, newValidationError(
				fmt.Sprintf("items[%d].product_id", i), "product not found")
		}

		lineTotal := price.Mul(decimal.NewFromInt(int64(itemReq.Quantity)))
		items = append(items, model.OrderItem{
			ProductID: itemReq.ProductID,
			Quantity:  itemReq.Quantity,
			UnitPrice: price,
			Total:     lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	return items, subtotal, nil
}

func parseDates(req *model.OrderRequest) (time.Time, *time.Time, error) {
	orderDate, err := time.Parse(dateLayout, req.OrderDate)
	if err != nil {
		return time.Time{}, nil, newValidationError("order_date", "must use the YYYY-MM-DD format")
	}
	var deliveryDate *time.Time
	if req.DeliveryDate != "" {
		d, err := time.Parse(dateLayout, req.DeliveryDate)
		if err != nil {
			return time.Time{}, nil, newValidationError("delivery_date", "must use the YYYY-MM-DD format")
		}
		deliveryDate = &d
	}
	return orderDate, deliveryDate, nil
}

func orderEvent(order *model.Order) map[string]interface{} {
	return map[string]interface{}{
		"id":           order.ID,
		"order_number": order.OrderNumber,
		"type":         order.Type,
		"status":       order.Status,
		"total":        order.Total,
	}
}
