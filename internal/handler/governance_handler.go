package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"esg-platform/internal/domain"
	"esg-platform/internal/middleware"
	"esg-platform/internal/service/governance"
)

type GovernanceHandler struct {
	governanceService governance.Service
}

func NewGovernanceHandler(governanceService governance.Service) *GovernanceHandler {
	return &GovernanceHandler{governanceService: governanceService}
}

func (h *GovernanceHandler) Submit(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	var input domain.CreateGovernanceMetricInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.governanceService.Submit(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *GovernanceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.governanceService.GetByID(c.Context(), middleware.GetCurrentUser(c), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *GovernanceHandler) Review(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.governanceService.Review(c.Context(), middleware.GetCurrentUser(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *GovernanceHandler) ListByCompany(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.governanceService.ListByCompany(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *GovernanceHandler) ListPending(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.governanceService.ListPending(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *GovernanceHandler) ListHistory(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.governanceService.ListHistory(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *GovernanceHandler) ListBySubtype(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	subtype := domain.GovernanceSubtype(strings.ToUpper(c.Params("subtype")))

	results, err := h.governanceService.ListBySubtype(c.Context(), user, companyID, subtype)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
