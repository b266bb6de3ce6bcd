package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCategory(t *testing.T) {
	cases := []struct {
		name   string
		form   CategoryForm
		fields []string
	}{
		{"valid", CategoryForm{Name: "Cabling"}, nil},
		{"empty name", CategoryForm{}, []string{"name"}},
		{"name too short", CategoryForm{Name: "A"}, []string{"name"}},
		{"name too long", CategoryForm{Name: strings.Repeat("x", 101)}, []string{"name"}},
		{"description too long", CategoryForm{Name: "OK", Description: strings.Repeat("x", 501)}, []string{"description"}},
		{"boundary lengths pass", CategoryForm{Name: strings.Repeat("x", 100), Description: strings.Repeat("x", 500)}, nil},
	}
	for _, tc := range cases {
		errs := ValidateCategory(tc.form)
		if len(tc.fields) == 0 {
			assert.True(t, errs.Valid(), "%s: unexpected errors: %v", tc.name, errs)
			continue
		}
		for _, f := range tc.fields {
			assert.Contains(t, errs, f, tc.name)
		}
	}
}
