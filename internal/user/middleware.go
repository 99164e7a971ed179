package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// tokenClaims extracts the JWT claims the jwt middleware stored on the
// request context.
func tokenClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	u := c.Locals("user")
	if u == nil {
		return nil, fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// GetUserIDFromCtx returns the user_id claim of the authenticated request.
func GetUserIDFromCtx(c *fiber.Ctx) (string, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return "", err
	}
	if raw, ok := claims["user_id"]; ok {
		if id, ok := raw.(string); ok && id != "" {
			return id, nil
		}
	}
	return "", fiber.ErrUnauthorized
}

// RoleFromCtx returns the role claim of the authenticated request.
func RoleFromCtx(c *fiber.Ctx) (string, error) {
	claims, err := tokenClaims(c)
	if err != nil {
		return "", err
	}
	if raw, ok := claims["role"]; ok {
		if role, ok := raw.(string); ok && role != "" {
			return role, nil
		}
	}
	return "", fiber.ErrUnauthorized
}

// RequireStaff gates the admin dashboard: the role claim must be ADMIN or
// TEAM. It runs once per request right after the jwt middleware, so
// individual handlers never re-check authorization.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := RoleFromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		if role != RoleAdmin && role != RoleTeam {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
		}
		return c.Next()
	}
}

// RequireAdmin gates user management; TEAM members cannot touch accounts.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := RoleFromCtx(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		if role != RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
		}
		return c.Next()
	}
}
