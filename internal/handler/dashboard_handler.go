package handler

import (
	"github.com/gofiber/fiber/v2"

	"esg-platform/internal/middleware"
	"esg-platform/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	stats, err := h.dashboardService.GetStats(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
