package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/serenadiary/serena/internal/common"
	"github.com/serenadiary/serena/internal/validation"
)

// Login prompts for credentials and opens a session. On success it greets the
// user and, when the diary has entries, adds a phrase matched to the most
// recent mood.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Correo", a.out)
	if err != nil {
		return err
	}
	if v := validation.ValidateEmail(email); !v.IsValid {
		fmt.Fprintln(a.out, v.Error)
		return nil
	}

	password, err := getPassword(a.out, "Contraseña")
	if err != nil {
		return err
	}
	if v := validation.ValidatePassword(password); !v.IsValid {
		fmt.Fprintln(a.out, v.Error)
		return nil
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Correo o contraseña incorrectos")
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	a.currentUser = user
	fmt.Fprintf(a.out, "Hola, %s 💜 %s\n", user.Name, a.responder.Greeting())

	phrase, err := a.moods.LatestPhrase(ctx, user.ID)
	if err != nil {
		a.log.Warn(ctx, "failed to load latest phrase", "error", err)
		return nil
	}
	if phrase != "" {
		fmt.Fprintln(a.out, phrase)
	}
	return nil
}

// Logout closes the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Hasta pronto, %s 🌸\n", a.currentUser.Name)
	a.currentUser = nil
	return nil
}
