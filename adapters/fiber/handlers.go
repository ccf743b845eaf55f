package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/adelacruz/popx/core"
)

// userResponse is the record as exposed over HTTP. The stored password
// never leaves the adapter.
type userResponse struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"fullName"`
	PhoneNumber    string    `json:"phoneNumber"`
	EmailAddress   string    `json:"emailAddress"`
	CompanyName    string    `json:"companyName,omitempty"`
	IsAgency       bool      `json:"isAgency"`
	Role           core.Role `json:"role"`
	ProfilePicture string    `json:"profilePic,omitempty"`
}

func viewOf(u *core.User) userResponse {
	return userResponse{
		ID:             u.ID,
		FullName:       u.FullName,
		PhoneNumber:    u.PhoneNumber,
		EmailAddress:   u.EmailAddress,
		CompanyName:    u.CompanyName,
		IsAgency:       u.IsAgency,
		Role:           u.Role,
		ProfilePicture: u.ProfilePicture,
	}
}

func viewsOf(users []core.User) []userResponse {
	views := make([]userResponse, 0, len(users))
	for i := range users {
		views = append(views, viewOf(&users[i]))
	}
	return views
}

func (a *Adapter) register(c fiber.Ctx) error {
	var input core.RegisterInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := a.auth.Register(input)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Account created successfully!",
		"user":    viewOf(user),
	})
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *Adapter) login(c fiber.Ctx) error {
	var input loginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := a.auth.Login(input.Email, input.Password)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user": viewOf(user),
	})
}

func (a *Adapter) logout(c fiber.Ctx) error {
	if err := a.auth.Logout(); err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Logged out successfully.",
	})
}

func (a *Adapter) session(c fiber.Ctx) error {
	user := c.Locals("user").(*core.User)
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user": viewOf(user),
	})
}

func (a *Adapter) listUsers(c fiber.Ctx) error {
	users, err := a.auth.ListUsers()
	if err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"users": viewsOf(users),
	})
}

type pictureInput struct {
	ProfilePicture string `json:"profilePic"`
}

func (a *Adapter) updatePicture(c fiber.Ctx) error {
	var input pictureInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := a.auth.UpdateProfilePicture(input.ProfilePicture)
	if err != nil {
		return handleAuthError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Profile picture updated successfully!",
		"user":    viewOf(user),
	})
}

// handleAuthError maps core errors to HTTP responses. Validation
// failures carry their full field map so the form can mark every
// offending field at once.
func handleAuthError(c fiber.Ctx, err error) error {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Please correct the errors in the form.",
			"fields": verr.Fields,
		})
	}
	return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps core error types to HTTP status codes.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrNoSession):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrDuplicateEmail):
		return http.StatusConflict

	case errors.Is(err, core.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType

	case errors.Is(err, core.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge

	default:
		return http.StatusInternalServerError
	}
}
