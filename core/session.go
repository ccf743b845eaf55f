package core

import (
	"errors"
	"fmt"
)

// Redirect targets handed to the navigation layer on a denied check.
// Adapters decide what concrete path each one maps to.
const (
	RedirectLogin     = "login"
	RedirectDashboard = "standard-dashboard"
)

// Decision is the outcome of an authorization check. Exactly one of
// Allowed and RedirectTo is meaningful.
type Decision struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirectTo,omitempty"`

	// User is the resolved session user when Allowed, for handlers
	// that need it downstream.
	User *User `json:"-"`
}

// CurrentUser resolves the session slot against the user collection.
// A slot referencing a record that no longer exists is cleared lazily
// and reported as ErrNoSession, never as a failure.
func (a *App) CurrentUser() (*User, error) {
	session, err := a.Storage.GetSession()
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	user, err := a.userByID(session.ActiveUserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			if cerr := a.Storage.ClearSession(); cerr != nil {
				a.Logger.Warn("failed to clear stale session")
			}
			return nil, ErrNoSession
		}
		return nil, err
	}
	return user, nil
}

// userByID scans the collection for the record with the given id.
// The collection is small; a linear scan is the lookup contract.
func (a *App) userByID(id int64) (*User, error) {
	users, err := a.Storage.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// Authorize gates a protected view. require may be empty, meaning any
// authenticated user is allowed; a role mismatch sends the user back
// to the standard dashboard rather than the sign-in page.
func (a *App) Authorize(require Role) Decision {
	user, err := a.CurrentUser()
	if err != nil {
		return Decision{RedirectTo: RedirectLogin}
	}
	if require != "" && user.Role != require {
		return Decision{RedirectTo: RedirectDashboard}
	}
	return Decision{Allowed: true, User: user}
}

// Logout tears the session down. It succeeds even when nobody is
// logged in.
func (a *App) Logout() error {
	if err := a.Storage.ClearSession(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	a.Logger.Info("logout")
	return nil
}
