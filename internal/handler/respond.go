package handler

import (
	"errors"
	"strconv"

	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// pageParam reads the page query parameter; pages start at 1.
func pageParam(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

func pagedResponse(c *fiber.Ctx, data interface{}, page int, total int64) error {
	totalPages := int((total + service.PageSize - 1) / service.PageSize)
	return c.JSON(fiber.Map{
		"data":        data,
		"page":        page,
		"page_size":   service.PageSize,
		"total":       total,
		"total_pages": totalPages,
	})
}

// serviceError maps service-layer failures onto the API's error
// contract: field maps for validation, single messages for guard
// rejections, and a generic 500 for storage failures.
func serviceError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": vErr.Fields})
	}
	var gErr *service.GuardError
	if errors.As(err, &gErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": gErr.Reason})
	}
	if errors.Is(err, service.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}

// Helper to parse UUID path params
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
