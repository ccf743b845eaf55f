package localstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/adelacruz/popx/core"
	"github.com/adelacruz/popx/pkg/kv"
)

func (a *Adapter) GetSession() (*core.Session, error) {
	raw, err := a.store.Get(sessionKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, core.ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session core.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		// An unreadable slot is a logged-out state, not a failure.
		a.logger.Warn("malformed session value, treating as logged out", zap.Error(err))
		return nil, core.ErrNoSession
	}
	return &session, nil
}

func (a *Adapter) SetSession(userID int64) error {
	data, err := json.Marshal(core.Session{ActiveUserID: userID})
	if err != nil {
		return err
	}
	if err := a.store.Set(sessionKey, string(data)); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	// Mirror flag for quick checks. Never the source of truth.
	return a.store.Set(loggedInKey, "true")
}

func (a *Adapter) ClearSession() error {
	if err := a.store.Delete(sessionKey); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := a.store.Delete(loggedInKey); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return fmt.Errorf("failed to clear login flag: %w", err)
	}
	return nil
}
