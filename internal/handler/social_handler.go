package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"esg-platform/internal/domain"
	"esg-platform/internal/middleware"
	"esg-platform/internal/service/social"
)

type SocialHandler struct {
	socialService social.Service
}

func NewSocialHandler(socialService social.Service) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

func (h *SocialHandler) Submit(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	var input domain.CreateSocialMetricInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.socialService.Submit(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *SocialHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.socialService.GetByID(c.Context(), middleware.GetCurrentUser(c), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *SocialHandler) Review(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.socialService.Review(c.Context(), middleware.GetCurrentUser(c), id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *SocialHandler) ListByCompany(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.socialService.ListByCompany(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *SocialHandler) ListPending(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.socialService.ListPending(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *SocialHandler) ListHistory(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	results, err := h.socialService.ListHistory(c.Context(), user, companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

func (h *SocialHandler) ListBySubtype(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	companyID, err := companyIDFor(c, user)
	if err != nil {
		return err
	}

	subtype := domain.SocialSubtype(strings.ToUpper(c.Params("subtype")))

	results, err := h.socialService.ListBySubtype(c.Context(), user, companyID, subtype)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
