package validation

import (
	"regexp"
	"strings"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const PasswordMin = 6

// UserForm is the submittable state of a user create/edit form.
// Password fields are only considered on create (isNew) or when a new
// password was actually typed.
type UserForm struct {
	Username        string
	FullName        string
	Email           string
	Role            string
	Password        string
	ConfirmPassword string
}

func ValidateUser(f UserForm, isNew bool) ErrorMap {
	errs := ErrorMap{}

	switch {
	case strings.TrimSpace(f.Username) == "":
		errs["username"] = "username is required"
	case len(f.Username) < 3:
		errs["username"] = "username must be at least 3 characters"
	case !usernameRe.MatchString(f.Username):
		errs["username"] = "username may only contain letters, digits and underscores"
	}

	switch {
	case strings.TrimSpace(f.FullName) == "":
		errs["full_name"] = "full name is required"
	case len(f.FullName) < 3:
		errs["full_name"] = "full name must be at least 3 characters"
	}

	switch {
	case strings.TrimSpace(f.Email) == "":
		errs["email"] = "email is required"
	case !emailRe.MatchString(f.Email):
		errs["email"] = "email format is invalid"
	}

	if isNew && f.Password == "" {
		errs["password"] = "password is required for a new user"
	} else if f.Password != "" && len(f.Password) < PasswordMin {
		errs["password"] = "password must be at least 6 characters"
	}
	if f.Password != "" && f.Password != f.ConfirmPassword {
		errs["confirm_password"] = "passwords do not match"
	}

	if f.Role == "" {
		errs["role"] = "role is required"
	}

	return errs
}
