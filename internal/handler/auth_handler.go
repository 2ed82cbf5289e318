package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"esg-platform/internal/domain"
	"esg-platform/internal/middleware"
	"esg-platform/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, tokens, err := h.authService.Register(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return middleware.Conflict("Email already registered")
		case errors.Is(err, auth.ErrInvalidRole):
			return middleware.BadRequest("Unknown role")
		case errors.Is(err, auth.ErrCompanyRequired):
			return middleware.BadRequest("Managers and representatives must belong to a company")
		case errors.Is(err, auth.ErrCompanyNotFound):
			return middleware.BadRequest("Company not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, tokens, err := h.authService.Login(c.Context(), input, middleware.GetUserAgent(c), middleware.GetIPAddress(c))
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return middleware.Unauthorized("Invalid email or password")
		case errors.Is(err, auth.ErrAccountInactive):
			return middleware.Forbidden("Account is inactive")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	tokens, err := h.authService.RefreshToken(c.Context(), input.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken):
			return middleware.Unauthorized("Invalid refresh token")
		case errors.Is(err, auth.ErrUserNotFound):
			return middleware.Unauthorized("User not found")
		case errors.Is(err, auth.ErrAccountInactive):
			return middleware.Forbidden("Account is inactive")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.authService.Logout(c.Context(), input.RefreshToken); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}
