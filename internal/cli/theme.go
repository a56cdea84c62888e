package cli

import (
	"context"
	"fmt"
)

// Theme toggles between the light and dark theme and persists the choice.
func (a *App) Theme(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	current, err := a.store.GetTheme(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load theme", "error", err)
		return err
	}

	next := current.Toggle()
	if err := a.store.SetTheme(ctx, next); err != nil {
		a.log.Error(ctx, "failed to save theme", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Tema cambiado: %s → %s\n", current, next)
	return nil
}
