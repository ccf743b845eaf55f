// Package popx is an embeddable account-management core: registration
// with collect-all validation, sign-in against a single session slot,
// a role gate for protected views and data-URL profile pictures, all
// persisted through a synchronous key-value medium.
package popx

import (
	"go.uber.org/zap"

	"github.com/adelacruz/popx/core"
	"github.com/adelacruz/popx/pkg/crypto"
)

// interfaces
type (
	AccountStorage = core.AccountStorage

	HTTPAdapter = core.HTTPAdapter

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	PopX   = core.App
	Config = core.Config

	User          = core.User
	Session       = core.Session
	UserUpdate    = core.UserUpdate
	RegisterInput = core.RegisterInput
	Decision      = core.Decision

	ValidationError = core.ValidationError
)

type (
	Role       = core.Role
	RolePolicy = core.RolePolicy
)

const (
	RoleAdmin = core.RoleAdmin
	RoleUser  = core.RoleUser

	RedirectLogin     = core.RedirectLogin
	RedirectDashboard = core.RedirectDashboard
)

const defaultBasePath = "/api/account"

// Constructors & helpers (convenience re-exports)
var (
	NewPlaintext      = crypto.NewPlaintext
	NewArgon2         = crypto.NewArgon2
	DefaultRolePolicy = core.DefaultRolePolicy
	EncodeImageRef    = core.EncodeImageRef
)

var (
	ErrDuplicateEmail     = core.ErrDuplicateEmail
	ErrUserNotFound       = core.ErrUserNotFound
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrNoSession          = core.ErrNoSession
)

var (
	ErrUnsupportedMediaType = core.ErrUnsupportedMediaType
	ErrPayloadTooLarge      = core.ErrPayloadTooLarge
)

var (
	ErrStorageRequired = core.ErrStorageRequired
)

// New builds a PopX instance from config, filling in defaults for
// everything but the storage adapter.
func New(config Config) (*PopX, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	// Set Defaults

	passwords := config.Passwords
	if passwords == nil {
		// The stored-record contract this library replicates keeps
		// passwords in the clear. Configure Argon2 to opt out.
		passwords = crypto.NewPlaintext()
	}

	roles := config.Roles
	if roles == nil {
		roles = core.DefaultRolePolicy
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	maxImageBytes := config.MaxImageBytes
	if maxImageBytes == 0 {
		maxImageBytes = core.DefaultMaxImageBytes
	}

	app := &core.App{
		Storage:       config.Storage,
		Passwords:     passwords,
		Roles:         roles,
		Logger:        logger,
		BasePath:      basePath,
		MaxImageBytes: maxImageBytes,
	}

	if config.HTTP != nil {
		if err := config.HTTP.RegisterRoutes(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}
