// Package validation checks user-entered fields before they reach the
// services. A failed check is a normal outcome carrying a user-facing
// message, not a Go error.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Result is the outcome of one validation check.
type Result struct {
	IsValid bool
	Error   string
}

func ok() Result {
	return Result{IsValid: true}
}

func fail(msg string) Result {
	return Result{Error: msg}
}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail requires a non-empty, well-formed address.
func ValidateEmail(email string) Result {
	if email == "" {
		return fail("El correo es obligatorio")
	}
	if !emailRegexp.MatchString(email) {
		return fail("Formato de correo inválido")
	}
	return ok()
}

// ValidatePassword requires at least 6 characters.
func ValidatePassword(password string) Result {
	if password == "" {
		return fail("La contraseña es obligatoria")
	}
	if utf8.RuneCountInString(password) < 6 {
		return fail("Mínimo 6 caracteres")
	}
	return ok()
}

// ValidatePasswordMatch requires both entries to be identical.
func ValidatePasswordMatch(password, confirm string) Result {
	if password != confirm {
		return fail("Las contraseñas no coinciden")
	}
	return ok()
}

// ValidateName requires at least 2 characters.
func ValidateName(name string) Result {
	if name == "" {
		return fail("El nombre es obligatorio")
	}
	if utf8.RuneCountInString(name) < 2 {
		return fail("Mínimo 2 caracteres")
	}
	return ok()
}

// ValidateRequired requires a non-blank value. fieldName names the field in
// the message; when empty, "Campo" is used.
func ValidateRequired(value, fieldName string) Result {
	if fieldName == "" {
		fieldName = "Campo"
	}
	if strings.TrimSpace(value) == "" {
		return fail(fmt.Sprintf("%s es obligatorio", fieldName))
	}
	return ok()
}
