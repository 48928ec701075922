package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	service service.PartnerService
}

func NewCustomerHandler(s service.PartnerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req model.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	customer, err := h.service.CreateCustomer(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": customer})
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var req model.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	customer, err := h.service.UpdateCustomer(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer updated", "data": customer})
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}
	if err := h.service.DeleteCustomer(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}
	customer, err := h.service.GetCustomer(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	page := pageParam(c)
	customers, total, err := h.service.ListCustomers(page)
	if err != nil {
		return serviceError(c, err)
	}
	return pagedResponse(c, customers, page, total)
}
