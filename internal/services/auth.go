// Package services contains the application services of the Serena CLI:
// account handling, diary writes and companion chat turns. Services sit
// between the REPL commands and the storage layer; field validation happens
// before input reaches them.
package services

import (
	"context"
	"fmt"

	"github.com/serenadiary/serena/internal/common"
	"github.com/serenadiary/serena/internal/logging"
	"github.com/serenadiary/serena/internal/models"
	"github.com/serenadiary/serena/internal/storage"
)

// AuthService handles registration, login and logout against the local store.
//
// Contract:
//   - Register: create an account and open a session for it. Returns
//     common.ErrUserExists when the email is already registered
//     (case-insensitive).
//   - Login: open a session for an existing account. Returns
//     common.ErrInvalidCredentials when no account matches the email.
//   - Logout: clear the session; a no-op when none is open.
//   - CurrentUser: the session user, or nil when logged out.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

type authService struct {
	store *storage.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given store.
func NewAuthService(store *storage.Store, log logging.Logger) AuthService {
	return &authService{store: store, log: log}
}

// Register creates a new account. The password is checked by the validation
// layer before it gets here and is not persisted: accounts carry no
// credential material.
func (a *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	exists, err := a.store.UserExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if exists {
		return nil, common.ErrUserExists
	}

	user := models.NewUser(name, email, models.AuthProviderEmail)
	if err := a.store.AddUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}
	if err := a.store.SetSession(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	a.log.Info(ctx, "user registered", "email", email)
	return user, nil
}

// Login opens a session for the account matching email. The store lookup
// matches by email only; the password is validated for shape upstream but is
// never compared against stored data.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := a.store.FindUser(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, common.ErrInvalidCredentials
	}

	if err := a.store.SetSession(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	a.log.Info(ctx, "user logged in", "email", email)
	return user, nil
}

// Logout clears the current session.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.ClearSession(ctx)
}

// CurrentUser returns the session user, or nil when no session is open.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return a.store.GetSession(ctx)
}
