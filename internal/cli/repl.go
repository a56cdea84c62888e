package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Mood(ctx context.Context) error
	Diary(ctx context.Context) error
	Chat(ctx context.Context) error
	History(ctx context.Context) error
	ClearHistory(ctx context.Context) error
	Theme(ctx context.Context) error
	Quote(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Serena CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — open a session
//	  - quote          — print a motivational quote
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - mood           — log today's mood
//	  - diary          — list your mood entries
//	  - chat           — talk with Serena
//	  - history        — show the chat history
//	  - clearhistory   — erase the chat history
//	  - theme          — toggle light/dark theme
//	  - quote          — print a motivational quote
//	  - logout         — close the session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("serena> %s", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: mood, diary, chat, history, clearhistory, theme, quote, logout, exit")
			} else {
				printlnFn("Available commands: register, login, quote, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "mood":
			_ = a.Mood(ctx)

		case "diary":
			_ = a.Diary(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "history":
			_ = a.History(ctx)

		case "clearhistory":
			_ = a.ClearHistory(ctx)

		case "theme":
			_ = a.Theme(ctx)

		case "quote":
			_ = a.Quote(ctx)

		case "exit", "quit":
			printlnFn("Hasta pronto. Cuídate mucho 🌸")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
