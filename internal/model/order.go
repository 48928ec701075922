package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeSale     OrderType = "sale"
	OrderTypePurchase OrderType = "purchase"
)

// Prefix returns the order-number prefix for the type (SO / PO).
func (t OrderType) Prefix() string {
	if t == OrderTypePurchase {
		return "PO"
	}
	return "SO"
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusReceived  OrderStatus = "received"
	StatusCancelled OrderStatus = "cancelled"
)

// Statuses returns the allowed status set for the order type.
// Sale orders end in "delivered", purchase orders in "received".
func (t OrderType) Statuses() []OrderStatus {
	if t == OrderTypePurchase {
		return []OrderStatus{StatusPending, StatusConfirmed, StatusShipped, StatusReceived, StatusCancelled}
	}
	return []OrderStatus{StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled}
}

// ValidStatus checks enum membership for the order type. Any member may
// follow any other; there is no transition graph.
func (t OrderType) ValidStatus(s OrderStatus) bool {
	for _, allowed := range t.Statuses() {
		if s == allowed {
			return true
		}
	}
	return false
}

// FormatOrderNumber builds the human-readable number, e.g. "SO-2025-0001".
func FormatOrderNumber(t OrderType, year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", t.Prefix(), year, seq)
}

type Order struct {
	BaseModel
	OrderNumber  string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"order_number"`
	Type         OrderType       `gorm:"type:varchar(10);not null;index" json:"type"`
	Status       OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CustomerID   *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Customer     *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	SupplierID   *uuid.UUID      `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier     *Supplier       `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"subtotal"`
	TaxAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"tax_amount"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	OrderDate    time.Time       `gorm:"type:date;not null;index" json:"order_date"`
	DeliveryDate *time.Time      `gorm:"type:date" json:"delivery_date,omitempty"`
	Notes        string          `gorm:"type:text" json:"notes"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
}

// OrderSequence holds the last issued number per (type, year).
// Incremented under a row lock inside the order-creation transaction so
// concurrent creators can never be handed the same number.
type OrderSequence struct {
	OrderType OrderType `gorm:"type:varchar(10);primaryKey" json:"order_type"`
	Year      int       `gorm:"primaryKey" json:"year"`
	LastValue int       `gorm:"not null;default:0" json:"last_value"`
}

func (OrderSequence) TableName() string {
	return "order_sequences"
}

// OrderItemRequest carries one submitted line. Sale payloads use
// unit_price, purchase payloads unit_cost; whichever matches the order
// type wins.
type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"uuid_required"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// Price resolves the per-unit amount for the given order type.
func (r OrderItemRequest) Price(t OrderType) decimal.Decimal {
	if t == OrderTypePurchase && !r.UnitCost.IsZero() {
		return r.UnitCost
	}
	return r.UnitPrice
}

// OrderRequest is the create/update payload. Status is ignored on
// create (orders start pending) and validated against the type's enum
// on update. Dates use the 2006-01-02 layout.
type OrderRequest struct {
	Type         OrderType          `json:"type" validate:"required,oneof=sale purchase"`
	Status       OrderStatus        `json:"status"`
	CustomerID   *uuid.UUID         `json:"customer_id"`
	SupplierID   *uuid.UUID         `json:"supplier_id"`
	OrderDate    string             `json:"order_date" validate:"required"`
	DeliveryDate string             `json:"delivery_date"`
	TaxAmount    decimal.Decimal    `json:"tax_amount"`
	Total        decimal.Decimal    `json:"total"`
	Notes        string             `json:"notes"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}
