package services

import (
	"context"
	"fmt"
	"time"

	"github.com/serenadiary/serena/internal/common"
	"github.com/serenadiary/serena/internal/models"
	"github.com/serenadiary/serena/internal/serena"
	"github.com/serenadiary/serena/internal/storage"
)

// MoodService records diary entries and produces the companion's reaction to
// them.
//
// Contract:
//   - LogMood: store one entry for the given calendar day and return it with
//     Serena's reply. Returns common.ErrUnknownEmotion for labels outside the
//     catalog and common.ErrEntryExists when the user already logged that day.
//   - Entries: the user's entries, newest first.
//   - LatestPhrase: a mood-of-the-moment phrase for the user's most recent
//     entry; empty string when the diary is empty.
type MoodService interface {
	LogMood(ctx context.Context, userID string, date time.Time, emotionLabel, description string) (*models.MoodEntry, serena.Response, error)
	Entries(ctx context.Context, userID string) ([]models.MoodEntry, error)
	LatestPhrase(ctx context.Context, userID string) (string, error)
}

type moodService struct {
	store     *storage.Store
	responder *serena.Responder
	now       func() time.Time
}

// NewMoodService constructs a MoodService over the given store and responder.
func NewMoodService(store *storage.Store, responder *serena.Responder) MoodService {
	return &moodService{store: store, responder: responder, now: time.Now}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (m *moodService) LogMood(ctx context.Context, userID string, date time.Time, emotionLabel, description string) (*models.MoodEntry, serena.Response, error) {
	emotion, ok := models.FindEmotion(emotionLabel)
	if !ok {
		return nil, serena.Response{}, common.ErrUnknownEmotion
	}

	existing, err := m.store.ListMoodEntriesByUser(ctx, userID)
	if err != nil {
		return nil, serena.Response{}, fmt.Errorf("failed to list entries: %w", err)
	}
	for _, e := range existing {
		if sameDay(e.Date, date) {
			return nil, serena.Response{}, common.ErrEntryExists
		}
	}

	entry := models.NewMoodEntry(userID, date, emotion, description)
	if err := m.store.AddMoodEntry(ctx, *entry); err != nil {
		return nil, serena.Response{}, fmt.Errorf("failed to add entry: %w", err)
	}

	return entry, m.responder.RespondToEmotion(emotion.Label), nil
}

func (m *moodService) Entries(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	return m.store.ListMoodEntriesByUser(ctx, userID)
}

func (m *moodService) LatestPhrase(ctx context.Context, userID string) (string, error) {
	entries, err := m.store.ListMoodEntriesByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}
	return m.responder.PersonalizedPhrase(entries[0].Emotion), nil
}
