package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidContactEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"yogi@example.com", true},
		{"first.last@sub.example.co", true},
		{"", false},
		{"no-at-sign", false},
		{"foo@bar", false},           // domain without dot
		{"foo bar@baz.com", false},   // whitespace
		{"foo@@bar.com", false},      // two at signs
		{"@bar.com", false},          // empty local part
		{"foo@", false},              // empty domain
		{"foo@.bar.com", false},      // domain starts with dot
		{"foo@bar.com.", false},      // domain ends with dot
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidContactEmail(tt.email))
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Name  string `validate:"required,min=2"`
		Email string `validate:"required,email"`
	}

	errs := ValidateStruct(form{Name: "A", Email: "not-an-email"})
	assert.Len(t, errs, 2)

	errs = ValidateStruct(form{Name: "Maya", Email: "maya@example.com"})
	assert.Empty(t, errs)
}
