package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/adelacruz/popx/core"
)

// requireAuth gates a route behind any authenticated session.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	return a.gate(c, "")
}

// requireRole gates a route behind a session with the given role.
func (a *Adapter) requireRole(role core.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		return a.gate(c, role)
	}
}

// gate runs the authorization decision and either stores the resolved
// user for downstream handlers or answers with the redirect target the
// navigation layer should follow.
func (a *Adapter) gate(c fiber.Ctx, require core.Role) error {
	decision := a.auth.Authorize(require)
	if !decision.Allowed {
		status := fiber.StatusUnauthorized
		if decision.RedirectTo == core.RedirectDashboard {
			status = fiber.StatusForbidden
		}
		return c.Status(status).JSON(fiber.Map{
			"error":    "access denied",
			"redirect": decision.RedirectTo,
		})
	}

	c.Locals("user", decision.User)
	return c.Next()
}
