package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenadiary/serena/internal/common"
	"github.com/serenadiary/serena/internal/logging"
	"github.com/serenadiary/serena/internal/models"
	"github.com/serenadiary/serena/internal/serena"
	"github.com/serenadiary/serena/internal/storage"
)

func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, storage.RunMigrations(ctx, db))

	return storage.New(db, logging.NewDefault("error"))
}

func TestAuthService_RegisterLoginLogout(t *testing.T) {
	store := setupStore(t)
	auth := NewAuthService(store, logging.NewDefault("error"))
	ctx := context.Background()

	user, err := auth.Register(ctx, "Ana", "ana@example.com", "secreto")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.AuthProviderEmail, user.AuthProvider)

	// registration opens a session
	current, err := auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, auth.Logout(ctx))
	current, err = auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	logged, err := auth.Login(ctx, "ANA@EXAMPLE.COM", "cualquier cosa")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID, "login matches by email only, case-insensitively")
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	store := setupStore(t)
	auth := NewAuthService(store, logging.NewDefault("error"))
	ctx := context.Background()

	_, err := auth.Register(ctx, "Ana", "ana@example.com", "secreto")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "Otra Ana", "Ana@Example.com", "secreto2")
	require.ErrorIs(t, err, common.ErrUserExists)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	store := setupStore(t)
	auth := NewAuthService(store, logging.NewDefault("error"))

	_, err := auth.Login(context.Background(), "nadie@example.com", "secreto")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestMoodService_LogMood(t *testing.T) {
	store := setupStore(t)
	moods := NewMoodService(store, serena.New())
	ctx := context.Background()

	day := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	entry, resp, err := moods.LogMood(ctx, "u1", day, "feliz", "buen día")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "Feliz", entry.Emotion, "label normalized to the catalog spelling")
	assert.Equal(t, "😊", entry.Emoji)
	assert.NotEmpty(t, resp.Message)

	entries, err := moods.Entries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestMoodService_OneEntryPerDay(t *testing.T) {
	store := setupStore(t)
	moods := NewMoodService(store, serena.New())
	ctx := context.Background()

	morning := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	_, _, err := moods.LogMood(ctx, "u1", morning, "feliz", "")
	require.NoError(t, err)

	_, _, err = moods.LogMood(ctx, "u1", evening, "triste", "")
	require.ErrorIs(t, err, common.ErrEntryExists)

	// other users and other days are unaffected
	_, _, err = moods.LogMood(ctx, "u2", evening, "triste", "")
	require.NoError(t, err)
	_, _, err = moods.LogMood(ctx, "u1", nextDay, "triste", "")
	require.NoError(t, err)
}

func TestMoodService_StoreStaysPermissive(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	// going straight to the store bypasses the one-per-day rule
	feliz, _ := models.FindEmotion("Feliz")
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.AddMoodEntry(ctx, *models.NewMoodEntry("u1", day, feliz, "")))
	require.NoError(t, store.AddMoodEntry(ctx, *models.NewMoodEntry("u1", day, feliz, "")))

	entries, err := store.ListMoodEntriesByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestMoodService_UnknownEmotion(t *testing.T) {
	store := setupStore(t)
	moods := NewMoodService(store, serena.New())

	_, _, err := moods.LogMood(context.Background(), "u1", time.Now(), "eufórico", "")
	require.True(t, errors.Is(err, common.ErrUnknownEmotion))
}

func TestMoodService_LatestPhrase(t *testing.T) {
	store := setupStore(t)
	moods := NewMoodService(store, serena.New())
	ctx := context.Background()

	phrase, err := moods.LatestPhrase(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, phrase, "no phrase for an empty diary")

	_, _, err = moods.LogMood(ctx, "u1", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "ansioso", "")
	require.NoError(t, err)

	phrase, err = moods.LatestPhrase(ctx, "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, phrase)
}

func TestChatService_SendMessagePersistsBothSides(t *testing.T) {
	store := setupStore(t)
	chat := NewChatService(store, serena.New())
	ctx := context.Background()

	userMsg, replyMsg, err := chat.SendMessage(ctx, "hola")
	require.NoError(t, err)
	assert.Equal(t, models.SenderUser, userMsg.Sender)
	assert.Equal(t, models.SenderSerena, replyMsg.Sender)
	assert.NotEmpty(t, replyMsg.Message)

	history, err := chat.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, userMsg.ID, history[0].ID)
	assert.Equal(t, replyMsg.ID, history[1].ID)

	require.NoError(t, chat.ClearHistory(ctx))
	history, err = chat.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}
