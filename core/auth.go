package core

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/adelacruz/popx/pkg/crypto"
)

// NewRecordID assigns the identifier for the next record: the current
// wall clock in milliseconds, bumped past the newest existing id so
// two registrations in the same millisecond stay unique.
func NewRecordID(existing []User) int64 {
	id := time.Now().UnixMilli()
	for _, u := range existing {
		if u.ID >= id {
			id = u.ID + 1
		}
	}
	return id
}

// Register validates a candidate record, enforces email uniqueness and
// appends the new user. No session is established; the caller routes
// to the sign-in flow on success.
func (a *App) Register(input RegisterInput) (*User, error) {
	if verr := ValidateRegistration(input); verr != nil {
		return nil, verr
	}

	// Step 1: Check if the email is already taken
	_, err := a.Storage.GetUserByEmail(input.EmailAddress)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	// Step 2: Prepare the stored credential
	stored, err := a.Passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password: %w", err)
	}

	// Step 3: Assign an id past everything already stored
	users, err := a.Storage.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	user := &User{
		ID:             NewRecordID(users),
		FullName:       input.FullName,
		PhoneNumber:    input.PhoneNumber,
		EmailAddress:   input.EmailAddress,
		Password:       stored,
		CompanyName:    input.CompanyName,
		IsAgency:       input.IsAgency,
		Role:           RoleFor(a.Roles, input.EmailAddress),
		ProfilePicture: DefaultProfilePicture,
	}

	if err := a.Storage.AppendUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	a.Logger.Info("user registered",
		zap.Int64("id", user.ID),
		zap.String("role", string(user.Role)))
	return user, nil
}

// Login authenticates by email and password and establishes the
// session, replacing any previous one wholesale. The record is
// returned so the caller can route on its role.
func (a *App) Login(email, password string) (*User, error) {
	user, err := a.lookupByCredentials(email, password)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidCredentials) {
			a.Logger.Debug("login rejected")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := a.Storage.SetSession(user.ID); err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}

	a.Logger.Info("login",
		zap.Int64("user", user.ID),
		zap.String("role", string(user.Role)))
	return user, nil
}

// lookupByCredentials picks the lookup strategy for the configured
// password handler: a plaintext handler can match both stored fields
// exactly, anything else needs Verify against the stored hash.
func (a *App) lookupByCredentials(email, password string) (*User, error) {
	if _, plain := a.Passwords.(*crypto.Plaintext); plain {
		return a.Storage.GetUserByCredentials(email, password)
	}

	user, err := a.Storage.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	ok, err := a.Passwords.Verify(password, user.Password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ListUsers returns every registered account in insertion order, for
// the admin listing. Authorization is the caller's concern; adapters
// gate the route with Authorize(RoleAdmin).
func (a *App) ListUsers() ([]User, error) {
	return a.Storage.ListUsers()
}

// UpdateProfilePicture stores a new picture for the logged-in user.
// The reference is validated before the store is touched. The
// collection is the single source of truth, so no denormalized session
// copy is written.
func (a *App) UpdateProfilePicture(ref string) (*User, error) {
	user, err := a.CurrentUser()
	if err != nil {
		return nil, err
	}

	if err := ValidateImageRef(ref, a.MaxImageBytes); err != nil {
		return nil, err
	}

	updated, err := a.Storage.UpdateUserByID(user.ID, UserUpdate{ProfilePicture: &ref})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile picture: %w", err)
	}
	return updated, nil
}
