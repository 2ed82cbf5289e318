package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"esg-platform/internal/domain"
	"esg-platform/internal/middleware"
	"esg-platform/internal/service/company"
	"esg-platform/internal/service/user"
)

type CompanyHandler struct {
	companyService company.Service
	userService    user.Service
}

func NewCompanyHandler(companyService company.Service, userService user.Service) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
		userService:    userService,
	}
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateCompanyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.companyService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, company.ErrNameTaken) {
			return middleware.Conflict("Company name already in use")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *CompanyHandler) List(c *fiber.Ctx) error {
	companies, err := h.companyService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(companies)
}

func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.companyService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *CompanyHandler) ListUsers(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	caller := middleware.GetCurrentUser(c)
	if caller.Role != domain.RoleAdmin {
		if caller.CompanyID == nil || *caller.CompanyID != id {
			return middleware.Forbidden("Cannot view another company's users")
		}
	}

	users, err := h.userService.ListByCompany(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(users)
}
