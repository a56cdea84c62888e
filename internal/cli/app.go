package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/serenadiary/serena/internal/config"
	"github.com/serenadiary/serena/internal/logging"
	"github.com/serenadiary/serena/internal/models"
	"github.com/serenadiary/serena/internal/serena"
	"github.com/serenadiary/serena/internal/services"
	"github.com/serenadiary/serena/internal/storage"
)

// App wires the store, the services and the responder behind the REPL
// commands. currentUser mirrors the stored session while the program runs.
type App struct {
	config      *config.Config
	log         logging.Logger
	store       *storage.Store
	auth        services.AuthService
	moods       services.MoodService
	chat        services.ChatService
	responder   *serena.Responder
	currentUser *models.User
	reader      *bufio.Reader
	out         io.Writer
	now         func() time.Time
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault(c.LogLevel)

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := storage.New(db, log)
	responder := serena.New()

	return &App{
		config:    c,
		log:       log,
		store:     store,
		auth:      services.NewAuthService(store, log),
		moods:     services.NewMoodService(store, responder),
		chat:      services.NewChatService(store, responder),
		responder: responder,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		now:       time.Now,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

func (a *App) status() string {
	if a.currentUser == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.currentUser.Name)
}

// requireLogin tells the user to log in when no session is open.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Inicia sesión primero ('login' o 'register')")
	return false
}

// Run restores a stored session, if any, and starts the REPL on stdin.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Serena 🌸 (type 'help' for commands)")

	if user, err := a.auth.CurrentUser(ctx); err == nil && user != nil {
		a.currentUser = user
		fmt.Fprintf(a.out, "Hola de nuevo, %s 💜\n", user.Name)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
