package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"esg-platform/internal/domain"
	"esg-platform/internal/middleware"
	"esg-platform/internal/service/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.userService.GetAll(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(users)
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.userService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UserHandler) AssignRole(c *fiber.Ctx) error {
	var input struct {
		domain.AssignRoleInput
		CompanyID *uuid.UUID `json:"company_id,omitempty"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.userService.AssignRole(c.Context(), input.AssignRoleInput, input.CompanyID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidRole):
			return middleware.BadRequest("Unknown role")
		case errors.Is(err, user.ErrCompanyRequired):
			return middleware.BadRequest("Managers and representatives must belong to a company")
		case errors.Is(err, user.ErrCompanyNotFound):
			return middleware.BadRequest("Company not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if id == middleware.GetCurrentUserID(c) {
		return middleware.BadRequest("Cannot delete your own account")
	}

	if err := h.userService.Delete(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User deleted",
	})
}
