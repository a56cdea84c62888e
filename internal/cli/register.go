package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/serenadiary/serena/internal/common"
	"github.com/serenadiary/serena/internal/validation"
)

// Input seams for tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for the new account fields, validates them and creates the
// account. A successful registration opens the session immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nombre", a.out)
	if err != nil {
		return err
	}
	if v := validation.ValidateName(name); !v.IsValid {
		fmt.Fprintln(a.out, v.Error)
		return nil
	}

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

	confirm, err := getPassword(a.out, "Confirma la contraseña")
	if err != nil {
		return err
	}
	if v := validation.ValidatePasswordMatch(password, confirm); !v.IsValid {
		fmt.Fprintln(a.out, v.Error)
		return nil
	}

	user, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, common.ErrUserExists) {
			fmt.Fprintln(a.out, "Ya existe una cuenta con este correo")
			return nil
		}
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	a.currentUser = user
	fmt.Fprintf(a.out, "Bienvenida a Serena, %s 🌸\n", user.Name)
	fmt.Fprintln(a.out, a.responder.MotivationalQuote())
	return nil
}
