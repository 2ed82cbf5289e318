package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"esg-platform/internal/domain"
	"esg-platform/internal/middleware"
	"esg-platform/internal/service/category"
)

type CategoryHandler struct {
	categoryService category.Service
}

func NewCategoryHandler(categoryService category.Service) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	rawType := c.Query("type")
	if rawType == "" {
		categories, err := h.categoryService.List(c.Context())
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(categories)
	}

	metricType := domain.MetricType(strings.ToUpper(rawType))
	categories, err := h.categoryService.ListByType(c.Context(), metricType)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(categories)
}

func (h *CategoryHandler) GetByCode(c *fiber.Ctx) error {
	metricType := domain.MetricType(strings.ToUpper(c.Query("type")))
	if !metricType.IsValid() {
		return middleware.BadRequest("Invalid or missing type")
	}

	result, err := h.categoryService.GetByCodeAndType(c.Context(), strings.ToUpper(c.Params("code")), metricType)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
