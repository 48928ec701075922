package service

import (
	"errors"
	"fmt"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerService manages the contact entities orders reference:
// customers (sale counterparts) and suppliers (purchase counterparts).
type PartnerService interface {
	CreateCustomer(req *model.CustomerRequest) (*model.Customer, error)
	UpdateCustomer(id uuid.UUID, req *model.CustomerRequest) (*model.Customer, error)
	DeleteCustomer(id uuid.UUID) error
	GetCustomer(id uuid.UUID) (*model.Customer, error)
	ListCustomers(page int) ([]model.Customer, int64, error)

	CreateSupplier(req *model.SupplierRequest) (*model.Supplier, error)
	UpdateSupplier(id uuid.UUID, req *model.SupplierRequest) (*model.Supplier, error)
	DeleteSupplier(id uuid.UUID) error
	GetSupplier(id uuid.UUID) (*model.Supplier, error)
	ListSuppliers(page int) ([]model.Supplier, int64, error)
}

type partnerService struct {
	customerRepo repository.CustomerRepository
	supplierRepo repository.SupplierRepository
	orderRepo    repository.OrderRepository
}

func NewPartnerService(cRepo repository.CustomerRepository, sRepo repository.SupplierRepository, oRepo repository.OrderRepository) PartnerService {
	return &partnerService{
		customerRepo: cRepo,
		supplierRepo: sRepo,
		orderRepo:    oRepo,
	}
}

func (s *partnerService) CreateCustomer(req *model.CustomerRequest) (*model.Customer, error) {
	if errs := validator.Errors(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if existing, _ := s.customerRepo.FindByEmail(req.Email); existing != nil {
		return nil, newValidationError("email", "already exists")
	}

	customer := &model.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: true,
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *partnerService) UpdateCustomer(id uuid.UUID, req *model.CustomerRequest) (*model.Customer, error) {
	existing, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if errs := validator.Errors(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if other, _ := s.customerRepo.FindByEmail(req.Email); other != nil && other.ID != existing.ID {
		return nil, newValidationError("email", "already exists")
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if err := s.customerRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCustomer refuses to remove a customer that still has orders.
func (s *partnerService) DeleteCustomer(id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := s.orderRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &GuardError{Reason: fmt.Sprintf("cannot delete customer: %d order(s) reference them", count)}
	}
	return s.customerRepo.Delete(id)
}

func (s *partnerService) GetCustomer(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *partnerService) ListCustomers(page int) ([]model.Customer, int64, error) {
	return s.customerRepo.FindAll(page, PageSize)
}

func (s *partnerService) CreateSupplier(req *model.SupplierRequest) (*model.Supplier, error) {
	if errs := validator.Errors(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if existing, _ := s.supplierRepo.FindByEmail(req.Email); existing != nil {
		return nil, newValidationError("email", "already exists")
	}

	supplier := &model.Supplier{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		IsActive:      true,
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *partnerService) UpdateSupplier(id uuid.UUID, req *model.SupplierRequest) (*model.Supplier, error) {
	existing, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if errs := validator.Errors(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if other, _ := s.supplierRepo.FindByEmail(req.Email); other != nil && other.ID != existing.ID {
		return nil, newValidationError("email", "already exists")
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.ContactPerson = req.ContactPerson
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if err := s.supplierRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteSupplier has no referential guard; only customers and
// categories are guarded.
func (s *partnerService) DeleteSupplier(id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.supplierRepo.Delete(id)
}

func (s *partnerService) GetSupplier(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return supplier, nil
}

func (s *partnerService) ListSuppliers(page int) ([]model.Supplier, int64, error) {
	return s.supplierRepo.FindAll(page, PageSize)
}
