package core

// DefaultAdminEmail is the account the stock role policy promotes.
const DefaultAdminEmail = "admin@popx.com"

// RolePolicy decides whether an email belongs to an administrator.
// It is consulted exactly once, at registration; roles are never
// revisited afterwards.
type RolePolicy func(email string) bool

// DefaultRolePolicy promotes only DefaultAdminEmail.
func DefaultRolePolicy(email string) bool {
	return email == DefaultAdminEmail
}

// RoleFor derives the role a new record is created with.
func RoleFor(policy RolePolicy, email string) Role {
	if policy != nil && policy(email) {
		return RoleAdmin
	}
	return RoleUser
}
