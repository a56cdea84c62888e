// Package storage provides typed access to the diary's persisted state: the
// current session, registered users, mood entries, chat history and the theme
// preference. Every record kind lives under one fixed key of the key-value
// medium as a JSON document; a missing or unreadable value reads as an empty
// collection or unset scalar, never as an error.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/serenadiary/serena/internal/dbx"
	"github.com/serenadiary/serena/internal/logging"
	"github.com/serenadiary/serena/internal/models"
	"github.com/serenadiary/serena/internal/storage/kv"
)

// Fixed logical keys of the persistence medium.
const (
	keyCurrentUser = "currentUser"
	keyUsers       = "users"
	keyEmotions    = "emotions"
	keyChatHistory = "chatHistory"
	keyTheme       = "theme"
)

// Store is the persistence layer of the diary. Collections share one
// serialized medium, so a single mutex guards every read-modify-write cycle.
type Store struct {
	mu  sync.Mutex
	db  *sql.DB
	log logging.Logger
}

// New returns a Store over the given database handle.
func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) repo() kv.Repository {
	return kv.NewSQLiteRepository(s.db)
}

// loadList reads and decodes the JSON list stored under key. A missing or
// unreadable value decodes as an empty list.
func loadList[T any](ctx context.Context, s *Store, r kv.Repository, key string) ([]T, error) {
	b, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(b, &list); err != nil {
		s.log.Warn(ctx, "discarding unreadable value", "key", key, "error", err)
		return nil, nil
	}
	return list, nil
}

func saveJSON(ctx context.Context, r kv.Repository, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return r.Set(ctx, key, b)
}

// SetSession stores user as the currently authenticated identity,
// last-write-wins.
func (s *Store) SetSession(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveJSON(ctx, s.repo(), keyCurrentUser, user)
}

// GetSession returns the currently authenticated user, or nil if no session
// has been set or it was cleared.
func (s *Store) GetSession(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.repo().Get(ctx, keyCurrentUser)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal(b, &user); err != nil {
		s.log.Warn(ctx, "discarding unreadable value", "key", keyCurrentUser, "error", err)
		return nil, nil
	}
	return &user, nil
}

// ClearSession removes the current session. Clearing an absent session is a
// no-op.
func (s *Store) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo().Delete(ctx, keyCurrentUser)
}

// ListUsers returns every registered user in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadList[models.User](ctx, s, s.repo(), keyUsers)
}

// AddUser appends user to the registered set. No uniqueness check is made
// here; callers should consult UserExists first.
func (s *Store) AddUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := kv.NewSQLiteRepository(tx)
		users, err := loadList[models.User](ctx, s, r, keyUsers)
		if err != nil {
			return err
		}
		return saveJSON(ctx, r, keyUsers, append(users, user))
	})
}

// UserExists reports whether a user with the given email is registered.
// Emails are compared case-insensitively.
func (s *Store) UserExists(ctx context.Context, email string) (bool, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// FindUser returns the user whose email matches case-insensitively, or nil
// when none does. The password argument is not compared against anything:
// accounts carry no credential material, so this lookup is not
// authentication.
func (s *Store) FindUser(ctx context.Context, email, password string) (*models.User, error) {
	_ = password

	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

// ListMoodEntries returns every mood entry across all users, newest first.
func (s *Store) ListMoodEntries(ctx context.Context) ([]models.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadList[models.MoodEntry](ctx, s, s.repo(), keyEmotions)
}

// ListMoodEntriesByUser returns the given user's mood entries, newest first.
func (s *Store) ListMoodEntriesByUser(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	entries, err := s.ListMoodEntries(ctx)
	if err != nil {
		return nil, err
	}
	var result []models.MoodEntry
	for _, e := range entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

// AddMoodEntry prepends entry to the global list, keeping newest-first order
// by insertion position.
func (s *Store) AddMoodEntry(ctx context.Context, entry models.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := kv.NewSQLiteRepository(tx)
		entries, err := loadList[models.MoodEntry](ctx, s, r, keyEmotions)
		if err != nil {
			return err
		}
		return saveJSON(ctx, r, keyEmotions, append([]models.MoodEntry{entry}, entries...))
	})
}

// ListChatMessages returns the chat history, oldest first.
func (s *Store) ListChatMessages(ctx context.Context) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadList[models.ChatMessage](ctx, s, s.repo(), keyChatHistory)
}

// AddChatMessage appends msg to the chat history.
func (s *Store) AddChatMessage(ctx context.Context, msg models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := kv.NewSQLiteRepository(tx)
		history, err := loadList[models.ChatMessage](ctx, s, r, keyChatHistory)
		if err != nil {
			return err
		}
		return saveJSON(ctx, r, keyChatHistory, append(history, msg))
	})
}

// ClearChatMessages resets the chat history to an empty sequence.
func (s *Store) ClearChatMessages(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveJSON(ctx, s.repo(), keyChatHistory, []models.ChatMessage{})
}

// GetTheme returns the stored theme preference, defaulting to light when the
// preference is unset or unreadable.
func (s *Store) GetTheme(ctx context.Context) (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.repo().Get(ctx, keyTheme)
	if err != nil {
		return models.ThemeLight, err
	}
	if len(b) == 0 {
		return models.ThemeLight, nil
	}
	var theme models.Theme
	if err := json.Unmarshal(b, &theme); err != nil {
		s.log.Warn(ctx, "discarding unreadable value", "key", keyTheme, "error", err)
		return models.ThemeLight, nil
	}
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return models.ThemeLight, nil
	}
	return theme, nil
}

// SetTheme stores the theme preference.
func (s *Store) SetTheme(ctx context.Context, theme models.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveJSON(ctx, s.repo(), keyTheme, theme)
}
