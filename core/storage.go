package core

// AccountStorage is the port to the durable record collection plus the
// single session slot. Every mutation writes through to the medium
// before returning; there is no buffering.
type AccountStorage interface {
	// ListUsers returns every stored record in insertion order. An
	// absent collection is an empty slice, not an error.
	ListUsers() ([]User, error)

	// GetUserByEmail is an exact-match lookup, used for the uniqueness
	// check at registration. Returns ErrUserNotFound when no record
	// matches.
	GetUserByEmail(email string) (*User, error)

	// GetUserByCredentials matches both stored fields exactly, used
	// for sign-in under the plaintext contract.
	GetUserByCredentials(email, password string) (*User, error)

	// AppendUser adds a record. The caller has already checked id and
	// email uniqueness; this operation does not re-validate them.
	AppendUser(u *User) error

	// UpdateUserByID merges the given update into the record with the
	// matching id, leaving every other field unchanged. Returns
	// ErrUserNotFound when no record has that id.
	UpdateUserByID(id int64, update UserUpdate) (*User, error)

	// GetSession reads the session slot. Absent or unreadable stored
	// state is ErrNoSession, never a parse failure.
	GetSession() (*Session, error)

	// SetSession replaces the slot wholesale.
	SetSession(userID int64) error

	// ClearSession removes the slot (and any mirror flag the medium
	// keeps alongside it).
	ClearSession() error
}
