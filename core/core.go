package core

import (
	"go.uber.org/zap"

	"github.com/adelacruz/popx/pkg/crypto"
)

// Config carries the collaborators an App is built from. Storage is
// the only required field; popx.New fills in everything else.
type Config struct {
	Storage AccountStorage

	HTTP HTTPAdapter

	// Optional config
	Passwords     crypto.PasswordHandler
	Roles         RolePolicy
	Logger        *zap.Logger
	BasePath      string
	MaxImageBytes int64
}

// App enforces the registration and authentication rules on top of an
// AccountStorage. It holds no record state of its own; every read and
// write goes through the storage port.
type App struct {
	Storage       AccountStorage
	Passwords     crypto.PasswordHandler
	Roles         RolePolicy
	Logger        *zap.Logger
	BasePath      string
	MaxImageBytes int64
}
