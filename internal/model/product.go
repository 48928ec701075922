package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	SKU           string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index" json:"category_id"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	Cost          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"cost"`
	Stock         int             `gorm:"default:0" json:"stock"`
	MinStockLevel int             `gorm:"default:0" json:"min_stock_level"`
	Unit          string          `gorm:"type:varchar(20)" json:"unit"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
}

// IsLowStock reports whether the product is at or below its minimum stock level.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStockLevel
}

// ProductRequest is the create/update payload for products.
type ProductRequest struct {
	Name          string          `json:"name" validate:"required"`
	SKU           string          `json:"sku" validate:"required"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	Stock         int             `json:"stock" validate:"gte=0"`
	MinStockLevel int             `json:"min_stock_level" validate:"gte=0"`
	Unit          string          `json:"unit"`
	IsActive      *bool           `json:"is_active"`
}
