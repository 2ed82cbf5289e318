package middleware

import (
	"github.com/gofiber/fiber/v2"

	"esg-platform/internal/domain"
)

func RequireRole(requiredRole domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !user.HasRole(requiredRole) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

// RequireExactRole skips the role hierarchy: an admin does not pass a
// manager-only gate. Review endpoints use this, since decisions must come
// from a manager of the submitting company.
func RequireExactRole(role domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if user.Role != role {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func RequireAnyRole(roles ...domain.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		for _, role := range roles {
			if user.HasRole(role) {
				return c.Next()
			}
		}

		return Forbidden("Insufficient permissions for this operation")
	}
}

func IsAdmin(c *fiber.Ctx) bool {
	user := GetCurrentUser(c)
	return user != nil && user.Role == domain.RoleAdmin
}

func IsManager(c *fiber.Ctx) bool {
	user := GetCurrentUser(c)
	return user != nil && (user.Role == domain.RoleManager || user.Role == domain.RoleAdmin)
}
