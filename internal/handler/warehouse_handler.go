package handler

import (
	"errors"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// WarehouseHandler works the repository directly; warehouses are plain
// CRUD with no business rules behind them.
type WarehouseHandler struct {
	repo repository.WarehouseRepository
}

func NewWarehouseHandler(repo repository.WarehouseRepository) *WarehouseHandler {
	return &WarehouseHandler{repo: repo}
}

func (h *WarehouseHandler) CreateWarehouse(c *fiber.Ctx) error {
	var req model.WarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.Errors(&req); errs != nil {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	warehouse := &model.Warehouse{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		warehouse.IsActive = *req.IsActive
	}
	if err := h.repo.Create(warehouse); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Warehouse created", "data": warehouse})
}

func (h *WarehouseHandler) UpdateWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	var req model.WarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.Errors(&req); errs != nil {
		return c.Status(400).JSON(fiber.Map{"errors": errs})
	}

	warehouse, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	warehouse.Name = req.Name
	warehouse.Location = req.Location
	warehouse.Description = req.Description
	if req.IsActive != nil {
		warehouse.IsActive = *req.IsActive
	}
	if err := h.repo.Update(warehouse); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Warehouse updated", "data": warehouse})
}

func (h *WarehouseHandler) DeleteWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}
	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if err := h.repo.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Warehouse deleted"})
}

func (h *WarehouseHandler) GetWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}
	warehouse, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(warehouse)
}

func (h *WarehouseHandler) GetWarehouses(c *fiber.Ctx) error {
	page := pageParam(c)
	warehouses, total, err := h.repo.FindAll(page, service.PageSize)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return pagedResponse(c, warehouses, page, total)
}
