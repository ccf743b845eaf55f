package core

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// MinPasswordLength is the shortest password the sign-up form accepts.
const MinPasswordLength = 8

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterInput is a candidate record submitted through the sign-up
// form. Role and ID are assigned by Register, never by the caller.
type RegisterInput struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
	CompanyName  string `json:"companyName"`
	IsAgency     bool   `json:"isAgency"`
}

// ValidationError lists every violation found in a submitted form,
// keyed by field name. Violations are collected rather than
// short-circuited so the form can mark all offending fields at once.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// ValidateRegistration checks every field of the candidate record and
// returns a *ValidationError naming all of them, or nil when the
// record is acceptable.
func ValidateRegistration(input RegisterInput) *ValidationError {
	fields := make(map[string]string)

	if strings.TrimSpace(input.FullName) == "" {
		fields["fullName"] = "Full Name is required."
	}

	switch {
	case strings.TrimSpace(input.PhoneNumber) == "":
		fields["phoneNumber"] = "Phone number is required."
	case !phonePattern.MatchString(input.PhoneNumber):
		fields["phoneNumber"] = "Phone number must be exactly 10 digits."
	}

	switch {
	case strings.TrimSpace(input.EmailAddress) == "":
		fields["emailAddress"] = "Email address is required."
	case !emailPattern.MatchString(input.EmailAddress):
		fields["emailAddress"] = "Please enter a valid email address."
	}

	switch {
	case strings.TrimSpace(input.Password) == "":
		fields["password"] = "Password is required."
	case len(input.Password) < MinPasswordLength:
		fields["password"] = "Password must be at least 8 characters."
	}

	// companyName is optional and unconstrained.

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
