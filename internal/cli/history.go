package cli

import (
	"context"
	"fmt"

	"github.com/serenadiary/serena/internal/models"
)

// History prints the stored conversation, oldest first.
func (a *App) History(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	messages, err := a.chat.History(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load chat history", "error", err)
		return err
	}
	if len(messages) == 0 {
		fmt.Fprintln(a.out, "Aún no has hablado con Serena")
		return nil
	}

	for _, m := range messages {
		who := "Tú"
		if m.Sender == models.SenderSerena {
			who = "Serena"
		}
		fmt.Fprintf(a.out, "[%s] %s: %s\n", m.Timestamp.Format("2006-01-02 15:04"), who, m.Message)
	}
	return nil
}

// ClearHistory erases the stored conversation.
func (a *App) ClearHistory(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	if err := a.chat.ClearHistory(ctx); err != nil {
		a.log.Error(ctx, "failed to clear chat history", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Historial borrado")
	return nil
}
