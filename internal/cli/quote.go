package cli

import (
	"context"
	"fmt"
)

// Quote prints a motivational quote. Available without a session.
func (a *App) Quote(ctx context.Context) error {
	fmt.Fprintln(a.out, a.responder.MotivationalQuote())
	return nil
}
