package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email     string
		valid     bool
		wantError string
	}{
		{"ana@example.com", true, ""},
		{"a@b.co", true, ""},
		{"", false, "El correo es obligatorio"},
		{"sin-arroba.com", false, "Formato de correo inválido"},
		{"dos@arro@bas.com", false, "Formato de correo inválido"},
		{"espacios @mal.com", false, "Formato de correo inválido"},
		{"sin@punto", false, "Formato de correo inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			r := ValidateEmail(tt.email)
			assert.Equal(t, tt.valid, r.IsValid)
			assert.Equal(t, tt.wantError, r.Error)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("secreto").IsValid)
	assert.True(t, ValidatePassword("señora").IsValid, "length counts runes, not bytes")

	r := ValidatePassword("")
	assert.False(t, r.IsValid)
	assert.Equal(t, "La contraseña es obligatoria", r.Error)

	r = ValidatePassword("corta")
	assert.False(t, r.IsValid)
	assert.Equal(t, "Mínimo 6 caracteres", r.Error)
}

func TestValidatePasswordMatch(t *testing.T) {
	assert.True(t, ValidatePasswordMatch("igual1", "igual1").IsValid)

	r := ValidatePasswordMatch("una", "otra")
	assert.False(t, r.IsValid)
	assert.Equal(t, "Las contraseñas no coinciden", r.Error)
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("Ana").IsValid)

	r := ValidateName("")
	assert.False(t, r.IsValid)
	assert.Equal(t, "El nombre es obligatorio", r.Error)

	r = ValidateName("A")
	assert.False(t, r.IsValid)
	assert.Equal(t, "Mínimo 2 caracteres", r.Error)
}

func TestValidateRequired(t *testing.T) {
	assert.True(t, ValidateRequired("algo", "Emoción").IsValid)

	r := ValidateRequired("   ", "Emoción")
	assert.False(t, r.IsValid)
	assert.Equal(t, "Emoción es obligatorio", r.Error)

	r = ValidateRequired("", "")
	assert.False(t, r.IsValid)
	assert.Equal(t, "Campo es obligatorio", r.Error)
}
