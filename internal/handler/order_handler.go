package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req model.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.CreateOrder(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order})
}

func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req model.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.UpdateOrder(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order updated", "data": order})
}

func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	if err := h.service.DeleteOrder(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}
	order, err := h.service.GetOrder(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(order)
}

// GetOrders lists orders with optional type and status filters.
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	page := pageParam(c)
	orderType := c.Query("type")
	status := c.Query("status")

	orders, total, err := h.service.ListOrders(orderType, status, page)
	if err != nil {
		return serviceError(c, err)
	}
	return pagedResponse(c, orders, page, total)
}
