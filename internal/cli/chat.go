package cli

import (
	"context"
	"fmt"
	"strings"
)

// Chat runs a conversation loop with the companion. An empty line ends the
// conversation; every exchanged message is persisted.
func (a *App) Chat(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	history, err := a.chat.History(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to load chat history", "error", err)
		return err
	}
	if len(history) == 0 {
		fmt.Fprintf(a.out, "Serena: %s\n", a.responder.Greeting())
	}
	fmt.Fprintln(a.out, "(escribe una línea vacía para terminar)")

	for {
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		text := strings.TrimSpace(line)
		if text == "" {
			return nil
		}

		_, reply, err := a.chat.SendMessage(ctx, text)
		if err != nil {
			a.log.Error(ctx, "failed to send message", "error", err)
			return err
		}
		fmt.Fprintf(a.out, "Serena: %s\n", reply.Message)
	}
}
