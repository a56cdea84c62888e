package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/serenadiary/serena/internal/common"
	"github.com/serenadiary/serena/internal/models"
)

// pickEmotion resolves the user's choice against the emotion catalog.
// Both the entry number and the label itself are accepted.
func pickEmotion(choice string) (models.Emotion, bool) {
	choice = strings.TrimSpace(choice)
	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(models.EmotionCatalog) {
			return models.EmotionCatalog[n-1], true
		}
		return models.Emotion{}, false
	}
	return models.FindEmotion(choice)
}

// Mood logs today's diary entry: an emotion from the catalog plus an optional
// free-form description.
func (a *App) Mood(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	fmt.Fprintln(a.out, "¿Cómo te sientes hoy?")
	for i, e := range models.EmotionCatalog {
		fmt.Fprintf(a.out, "  %d. %s %s\n", i+1, e.Emoji, e.Label)
	}

	choice, err := getSimpleText(a.reader, "Elige una emoción (número o nombre)", a.out)
	if err != nil {
		return err
	}
	emotion, ok := pickEmotion(choice)
	if !ok {
		fmt.Fprintln(a.out, "No conozco esa emoción")
		return nil
	}

	description, err := GetMultiline(a.reader, "¿Quieres contarme algo más? (opcional)", a.out)
	if err != nil {
		return err
	}

	entry, resp, err := a.moods.LogMood(ctx, a.currentUser.ID, a.now(), emotion.Label, description)
	if err != nil {
		if errors.Is(err, common.ErrEntryExists) {
			fmt.Fprintln(a.out, "Ya existe una entrada para este día")
			return nil
		}
		a.log.Error(ctx, "failed to log mood", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Registrado: %s %s\n", entry.Emoji, entry.Emotion)
	fmt.Fprintln(a.out, resp.Message)
	fmt.Fprintln(a.out, a.responder.PersonalizedPhrase(entry.Emotion))
	return nil
}

// Diary lists the user's mood entries, newest first.
func (a *App) Diary(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	entries, err := a.moods.Entries(ctx, a.currentUser.ID)
	if err != nil {
		a.log.Error(ctx, "failed to list entries", "error", err)
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Tu diario está vacío. Usa 'mood' para empezar 🌸")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(a.out, "%s  %s %s", e.Date.Format("2006-01-02"), e.Emoji, e.Emotion)
		if e.Description != "" {
			fmt.Fprintf(a.out, " — %s", e.Description)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}
