package core

// Role classifies what a user is allowed to see.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents a registered account.
//
// JSON tags match the stored record shape, so a collection written by
// this library round-trips through the durable medium unchanged. The
// password field is part of that shape; HTTP adapters expose their own
// sanitized view instead of marshaling a User directly.
type User struct {
	ID             int64  `json:"id"`
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	EmailAddress   string `json:"emailAddress"`
	Password       string `json:"password"`
	CompanyName    string `json:"companyName,omitempty"`
	IsAgency       bool   `json:"isAgency"`
	Role           Role   `json:"role"`
	ProfilePicture string `json:"profilePic,omitempty"`
}

// Session is the single active login for a client context.
//
// It holds only the identifier; the user collection stays the single
// source of truth and the current user is always re-resolved by ID.
type Session struct {
	ActiveUserID int64 `json:"activeUserId"`
}

// UserUpdate describes a merge applied by UpdateUserByID. Nil fields
// are left unchanged.
type UserUpdate struct {
	ProfilePicture *string `json:"profilePic,omitempty"`
}
