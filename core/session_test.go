package core

import (
	"errors"
	"testing"
)

// Requirement: the session state machine is LoggedOut / LoggedIn, with
// the initial state read from durable storage, not hardcoded.
func TestApp_CurrentUser(t *testing.T) {
	t.Run("reports logged out when no session exists", func(t *testing.T) {
		app := newTestApp(NewFakeAccountStorage())

		_, err := app.CurrentUser()

		if !errors.Is(err, ErrNoSession) {
			t.Errorf("CurrentUser() error = %v, want %v", err, ErrNoSession)
		}
	})

	t.Run("resolves the session against the collection", func(t *testing.T) {
		storage := NewFakeAccountStorage()
		app := newTestApp(storage)
		if _, err := app.Register(validInput()); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		logged, err := app.Login("alice@example.com", "SecurePass123!")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		current, err := app.CurrentUser()

		if err != nil {
			t.Fatalf("CurrentUser() error = %v", err)
		}
		if current.ID != logged.ID || current.EmailAddress != logged.EmailAddress {
			t.Errorf("CurrentUser() = %+v, want the logged-in record", current)
		}
	})

	t.Run("picks up a session already in durable storage", func(t *testing.T) {
		// Cold start: the slot was written by a previous run.
		storage := NewFakeAccountStorage()
		_ = storage.AppendUser(&User{ID: 42, EmailAddress: "alice@example.com"})
		_ = storage.SetSession(42)
		app := newTestApp(storage)

		current, err := app.CurrentUser()

		if err != nil {
			t.Fatalf("CurrentUser() error = %v", err)
		}
		if current.ID != 42 {
			t.Errorf("CurrentUser().ID = %d, want 42", current.ID)
		}
	})

	t.Run("clears a session referencing a missing record", func(t *testing.T) {
		storage := NewFakeAccountStorage()
		_ = storage.SetSession(999)
		app := newTestApp(storage)

		_, err := app.CurrentUser()

		if !errors.Is(err, ErrNoSession) {
			t.Fatalf("CurrentUser() error = %v, want %v", err, ErrNoSession)
		}
		if _, serr := storage.GetSession(); !errors.Is(serr, ErrNoSession) {
			t.Errorf("stale session slot was not cleared")
		}
	})
}

// Requirement: no session always redirects to sign-in; a role mismatch
// redirects to the standard dashboard; everything else is allowed.
func TestApp_Authorize(t *testing.T) {
	tests := []struct {
		name         string
		sessionEmail string // empty means logged out
		require      Role
		wantAllowed  bool
		wantRedirect string
	}{
		{
			name:         "logged out, any view",
			require:      "",
			wantRedirect: RedirectLogin,
		},
		{
			name:         "logged out, admin view",
			require:      RoleAdmin,
			wantRedirect: RedirectLogin,
		},
		{
			name:         "user on an unrestricted view",
			sessionEmail: "alice@example.com",
			require:      "",
			wantAllowed:  true,
		},
		{
			name:         "user on an admin view",
			sessionEmail: "alice@example.com",
			require:      RoleAdmin,
			wantRedirect: RedirectDashboard,
		},
		{
			name:         "admin on an admin view",
			sessionEmail: DefaultAdminEmail,
			require:      RoleAdmin,
			wantAllowed:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			storage := NewFakeAccountStorage()
			app := newTestApp(storage)
			for _, email := range []string{"alice@example.com", DefaultAdminEmail} {
				in := validInput()
				in.EmailAddress = email
				if _, err := app.Register(in); err != nil {
					t.Fatalf("Register(%s) error = %v", email, err)
				}
			}
			if test.sessionEmail != "" {
				if _, err := app.Login(test.sessionEmail, "SecurePass123!"); err != nil {
					t.Fatalf("Login() error = %v", err)
				}
			}

			// Act
			decision := app.Authorize(test.require)

			// Assert
			if decision.Allowed != test.wantAllowed {
				t.Errorf("Allowed = %v, want %v", decision.Allowed, test.wantAllowed)
			}
			if decision.RedirectTo != test.wantRedirect {
				t.Errorf("RedirectTo = %q, want %q", decision.RedirectTo, test.wantRedirect)
			}
			if test.wantAllowed && decision.User == nil {
				t.Errorf("allowed decision should carry the resolved user")
			}
		})
	}
}

// Requirement: logout tears the session down unconditionally; the next
// inspection reports logged out and the gate redirects to sign-in.
func TestApp_Logout(t *testing.T) {
	storage := NewFakeAccountStorage()
	app := newTestApp(storage)
	if _, err := app.Register(validInput()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := app.Login("alice@example.com", "SecurePass123!"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := app.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if _, err := app.CurrentUser(); !errors.Is(err, ErrNoSession) {
		t.Errorf("CurrentUser() after logout error = %v, want %v", err, ErrNoSession)
	}
	if decision := app.Authorize(""); decision.RedirectTo != RedirectLogin {
		t.Errorf("Authorize() after logout redirect = %q, want %q", decision.RedirectTo, RedirectLogin)
	}

	// Logging out again is still fine.
	if err := app.Logout(); err != nil {
		t.Errorf("Logout() while logged out error = %v", err)
	}
}
