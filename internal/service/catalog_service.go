package service

import (
	"errors"
	"fmt"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/ws"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageSize is the fixed page size for every list endpoint.
const PageSize = 10

type CatalogService interface {
	CreateProduct(req *model.ProductRequest) (*model.Product, error)
	UpdateProduct(id uuid.UUID, req *model.ProductRequest) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetProduct(id uuid.UUID) (*model.Product, error)
	ListProducts(page int) ([]model.Product, int64, error)
	ListLowStockProducts() ([]model.Product, error)

	CreateCategory(req *model.CategoryRequest) (*model.Category, error)
	UpdateCategory(id uuid.UUID, req *model.CategoryRequest) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error
	GetCategory(id uuid.UUID) (*model.Category, error)
	ListCategories(page int) ([]model.Category, int64, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	wsHub        *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		wsHub:        hub,
	}
}

func (s *catalogService) CreateProduct(req *model.ProductRequest) (*model.Product, error) {
	if errs := validator.Errors(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.checkProductRefs(req); err != nil {
		return nil, err
	}
	if existing, _ := s.productRepo.FindBySKU(req.SKU); existing != nil {
		return nil, newValidationError("sku", "already exists")
	}

	product := &model.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		Cost:          req.Cost,
		Stock:         req.Stock,
		MinStockLevel: req.MinStockLevel,
		Unit:          req.Unit,
		IsActive:      true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.EventProductCreated, productEvent(product))
	return product, nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if errs := validator.Errors(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if err := s.checkProductRefs(req); err != nil {
		return nil, err
	}
	if other, _ := s.productRepo.FindBySKU(req.SKU); other != nil && other.ID != existing.ID {
		return nil, newValidationError("sku", "already exists")
	}

	existing.Name = req.Name
	existing.SKU = req.SKU
	existing.CategoryID = req.CategoryID
	existing.Price = req.Price
	existing.Cost = req.Cost
	existing.Stock = req.Stock
	existing.MinStockLevel = req.MinStockLevel
	existing.Unit = req.Unit
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.Category = nil

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.EventProductUpdated, productEvent(existing))
	if existing.IsLowStock() {
		s.wsHub.Publish(ws.EventLowStock, productEvent(existing))
	}
	return existing, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.productRepo.Delete(id)
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) ListProducts(page int) ([]model.Product, int64, error) {
	return s.productRepo.FindAll(page, PageSize)
}

func (s *catalogService) ListLowStockProducts() ([]model.Product, error) {
	return s.productRepo.FindLowStock()
}

func (s *catalogService) checkProductRefs(req *model.ProductRequest) error {
	if req.Price.IsNegative() {
		return newValidationError("price", "must be 0 or greater")
	}
	if req.Cost.IsNegative() {
		return newValidationError("cost", "must be 0 or greater")
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return newValidationError("category_id", "category not found")
		}
	}
	return nil
}

func (s *catalogService) CreateCategory(req *model.CategoryRequest) (*model.Category, error) {
	if errs := validator.Errors(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if existing, _ := s.categoryRepo.FindByName(req.Name); existing != nil {
		return nil, newValidationError("name", "already exists")
	}

	category := &model.Category{Name: req.Name, Description: req.Description}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) UpdateCategory(id uuid.UUID, req *model.CategoryRequest) (*model.Category, error) {
	existing, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if errs := validator.Errors(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if other, _ := s.categoryRepo.FindByName(req.Name); other != nil && other.ID != existing.ID {
		return nil, newValidationError("name", "already exists")
	}

	existing.Name = req.Name
	existing.Description = req.Description
	if err := s.categoryRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCategory refuses to remove a category that still owns products.
func (s *catalogService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := s.productRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &GuardError{Reason: fmt.Sprintf("cannot delete category: %d product(s) still belong to it", count)}
	}
	return s.categoryRepo.Delete(id)
}

func (s *catalogService) GetCategory(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) ListCategories(page int) ([]model.Category, int64, error) {
	return s.categoryRepo.FindAll(page, PageSize)
}

func productEvent(p *model.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":    p.ID,
		"sku":   p.SKU,
		"name":  p.Name,
		"stock": p.Stock,
		"price": p.Price,
	}
}
