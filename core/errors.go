package core

import "errors"

// Registration errors
var (
	ErrDuplicateEmail = errors.New("an account with this email address already exists") // 409 Conflict
	ErrUserNotFound   = errors.New("user not found")                                    // 404 Not Found
)

// Authentication errors
var (
	// ErrInvalidCredentials deliberately does not say whether the email
	// or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password") // 401 Unauthorized
	ErrNoSession          = errors.New("no active session")         // 401 Unauthorized
)

// Profile picture errors
var (
	ErrUnsupportedMediaType = errors.New("profile picture must be an image file") // 415
	ErrPayloadTooLarge      = errors.New("image size exceeds 2MB")                // 413
)

// Config errors (wiring-time)
var (
	ErrStorageRequired = errors.New("storage adapter is required") // 500
)
