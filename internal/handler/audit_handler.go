package handler

import (
	"github.com/gofiber/fiber/v2"

	"esg-platform/internal/service/audit"
)

type AuditHandler struct {
	auditService audit.Service
}

func NewAuditHandler(auditService audit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	logs, err := h.auditService.GetRecentActivities(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(logs)
}

func (h *AuditHandler) ListByEntity(c *fiber.Ctx) error {
	entityType := c.Params("entityType")
	params := paginationFromQuery(c)

	result, err := h.auditService.ListByEntity(c.Context(), entityType, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
