package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MoodEntry is one diary record: an emotion logged for a calendar day with an
// optional free-text note. Entries are immutable once created.
type MoodEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Date        time.Time `json:"date"`
	Emotion     string    `json:"emotion"`
	Emoji       string    `json:"emoji"`
	Description string    `json:"description"`
}

// NewMoodEntry returns a MoodEntry with a fresh id.
func NewMoodEntry(userID string, date time.Time, emotion Emotion, description string) *MoodEntry {
	return &MoodEntry{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        date,
		Emotion:     emotion.Label,
		Emoji:       emotion.Emoji,
		Description: description,
	}
}

// Emotion is one pickable mood of the diary.
type Emotion struct {
	Label string
	Emoji string
}

// EmotionCatalog lists the moods pickable in the diary, in display order.
var EmotionCatalog = []Emotion{
	{Label: "Feliz", Emoji: "😊"},
	{Label: "Triste", Emoji: "😢"},
	{Label: "Neutral", Emoji: "😐"},
	{Label: "Enamorado", Emoji: "❤️"},
	{Label: "Ansioso", Emoji: "😰"},
	{Label: "Enojado", Emoji: "😠"},
}

// FindEmotion looks up a catalog emotion by label, ignoring case.
func FindEmotion(label string) (Emotion, bool) {
	for _, e := range EmotionCatalog {
		if strings.EqualFold(e.Label, label) {
			return e, true
		}
	}
	return Emotion{}, false
}
