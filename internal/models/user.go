// Package models defines the records persisted by the diary: users, mood
// entries, chat messages and the theme preference.
package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthProvider identifies how an account was created.
type AuthProvider string

const (
	AuthProviderEmail  AuthProvider = "email"
	AuthProviderGoogle AuthProvider = "google"
)

// User is a registered account. Users are immutable once created and are
// never deleted. The email is the lookup key and is compared
// case-insensitively; uniqueness is the caller's responsibility.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	CreatedAt    time.Time    `json:"createdAt"`
	AuthProvider AuthProvider `json:"authProvider,omitempty"`
	PhotoURL     string       `json:"photoURL,omitempty"`
}

// NewUser returns a User with a fresh id and creation timestamp.
func NewUser(name, email string, provider AuthProvider) *User {
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		CreatedAt:    time.Now(),
		AuthProvider: provider,
	}
}
