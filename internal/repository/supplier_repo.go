package repository

import (
	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(page, pageSize int) ([]model.Supplier, int64, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	FindByEmail(email string) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uuid.UUID) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll(page, pageSize int) ([]model.Supplier, int64, error) {
	var suppliers []model.Supplier
	var total int64
	if err := r.db.Model(&model.Supplier{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("name ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&suppliers).Error
	return suppliers, total, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) FindByEmail(email string) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Supplier{}, "id = ?", id).Error
}
