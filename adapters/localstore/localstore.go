// Package localstore implements core.AccountStorage over a kv.Store,
// using the same three keys as the stored shape it replicates: a users
// array, a session slot and an isLoggedIn mirror flag. Malformed
// values under any key degrade to the empty state instead of failing.
package localstore

import (
	"go.uber.org/zap"

	"github.com/adelacruz/popx/core"
	"github.com/adelacruz/popx/pkg/kv"
)

const (
	usersKey    = "users"
	sessionKey  = "currentSession"
	loggedInKey = "isLoggedIn"
)

type Adapter struct {
	store  kv.Store
	logger *zap.Logger
}

var _ core.AccountStorage = (*Adapter)(nil)

func New(store kv.Store, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		store:  store,
		logger: logger,
	}
}
