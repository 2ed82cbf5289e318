package handler

import (
	"github.com/gofiber/fiber/v2"

	"esg-platform/internal/domain"
	"esg-platform/internal/middleware"
	"esg-platform/internal/service/esg"
)

type ESGHandler struct {
	esgService esg.Service
}

func NewESGHandler(esgService esg.Service) *ESGHandler {
	return &ESGHandler{esgService: esgService}
}

func (h *ESGHandler) Submit(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	var input domain.CreateESGSubmissionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.esgService.Submit(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *ESGHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.esgService.GetByID(c.Context(), middleware.GetCurrentUser(c), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ESGHandler) Review(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.esgService.Review(c.Context(), middleware.GetCurrentUser(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ESGHandler) ListByCompany(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.esgService.ListByCompany(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *ESGHandler) ListPending(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.esgService.ListPending(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *ESGHandler) ListHistory(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.esgService.ListHistory(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *ESGHandler) ChartData(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	chart, err := h.esgService.ChartData(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(chart)
}
