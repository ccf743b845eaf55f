// Package fiber mounts the account routes onto a Fiber application.
// It is the rendering/navigation side of the library: handlers bind
// form payloads, call the core protocols and translate their outcomes
// to statuses and redirect targets.
package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/adelacruz/popx/core"
)

type Adapter struct {
	app  *fiber.App
	auth *core.App
}

var _ core.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

func (a *Adapter) RegisterRoutes(auth *core.App) error {
	a.auth = auth
	api := a.app.Group(auth.BasePath)

	// Public routes
	api.Post("/register", a.register)
	api.Post("/login", a.login)

	// Logout succeeds for everyone, logged in or not.
	api.Post("/logout", a.logout)

	// Protected routes
	authed := api.Group("", a.requireAuth)
	authed.Get("/session", a.session)
	authed.Put("/profile/picture", a.updatePicture)

	// Admin routes
	admin := api.Group("", a.requireRole(core.RoleAdmin))
	admin.Get("/users", a.listUsers)

	return nil
}
