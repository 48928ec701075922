package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CatalogService
}

func NewCategoryHandler(s service.CatalogService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req model.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.CreateCategory(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var req model.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.UpdateCategory(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": category})
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}
	if err := h.service.DeleteCategory(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}
	category, err := h.service.GetCategory(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	page := pageParam(c)
	categories, total, err := h.service.ListCategories(page)
	if err != nil {
		return serviceError(c, err)
	}
	return pagedResponse(c, categories, page, total)
}
