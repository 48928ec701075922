package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseRepository interface {
	Create(warehouse *model.Warehouse) error
	FindAll(page, pageSize int) ([]model.Warehouse, int64, error)
	FindByID(id uuid.UUID) (*model.Warehouse, error)
	Update(warehouse *model.Warehouse) error
	Delete(id uuid.UUID) error
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) Create(warehouse *model.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepo) FindAll(page, pageSize int) ([]model.Warehouse, int64, error) {
	var warehouses []model.Warehouse
	var total int64
	if err := r.db.Model(&model.Warehouse{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("name ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&warehouses).Error
	return warehouses, total, err
}

func (r *warehouseRepo) FindByID(id uuid.UUID) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	if err := r.db.First(&warehouse, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) Update(warehouse *model.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *warehouseRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Warehouse{}, "id = ?", id).Error
}
