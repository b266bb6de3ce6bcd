package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validUserForm() UserForm {
	return UserForm{
		Username:        "jdoe_01",
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		Role:            "user",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestValidateUser_Valid(t *testing.T) {
	errs := ValidateUser(validUserForm(), true)
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestValidateUser_Username(t *testing.T) {
	cases := []struct {
		username string
		wantErr  bool
	}{
		{"", true},
		{"ab", true},
		{"has space", true},
		{"dash-ed", true},
		{"ok_name3", false},
	}
	for _, tc := range cases {
		f := validUserForm()
		f.Username = tc.username
		errs := ValidateUser(f, true)
		if tc.wantErr {
			assert.Contains(t, errs, "username", "username=%q", tc.username)
		} else {
			assert.NotContains(t, errs, "username", "username=%q", tc.username)
		}
	}
}

func TestValidateUser_Email(t *testing.T) {
	for _, bad := range []string{"", "plain", "a@b", "a b@c.d"} {
		f := validUserForm()
		f.Email = bad
		assert.Contains(t, ValidateUser(f, true), "email", "email=%q", bad)
	}
}

func TestValidateUser_PasswordRules(t *testing.T) {
	// Required on create only.
	f := validUserForm()
	f.Password, f.ConfirmPassword = "", ""
	assert.Contains(t, ValidateUser(f, true), "password")
	assert.NotContains(t, ValidateUser(f, false), "password")

	// Minimum length when present.
	f.Password, f.ConfirmPassword = "short", "short"
	assert.Contains(t, ValidateUser(f, false), "password")

	// Confirmation must match.
	f.Password, f.ConfirmPassword = "secret1", "secret2"
	assert.Contains(t, ValidateUser(f, false), "confirm_password")
}

func TestValidateUser_CollectsAllViolations(t *testing.T) {
	errs := ValidateUser(UserForm{}, true)
	for _, field := range []string{"username", "full_name", "email", "password", "role"} {
		assert.Contains(t, errs, field)
	}
}
