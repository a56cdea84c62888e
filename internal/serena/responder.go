// Package serena implements the scripted companion. It classifies what the
// user wrote into a fixed set of emotion categories by ordered substring
// matching and answers with a canned empathetic reply drawn at random from
// the matching pool. There is no conversational state: every reply is a
// function of the single input and the random source.
package serena

import (
	"math/rand/v2"
	"strings"
)

// Response is a companion reply, optionally tagged with the emotion that
// produced it.
type Response struct {
	Message string
	Emotion string
}

// Responder produces scripted replies. The intn field selects from reply
// pools and can be replaced in tests for deterministic picks.
type Responder struct {
	intn func(n int) int
}

// New returns a Responder drawing replies with the default random source.
func New() *Responder {
	return NewWithSource(rand.IntN)
}

// NewWithSource returns a Responder using intn for pool selection. intn must
// return a value in [0, n).
func NewWithSource(intn func(n int) int) *Responder {
	return &Responder{intn: intn}
}

func (r *Responder) pick(pool []string) string {
	return pool[r.intn(len(pool))]
}

// Greeting returns a random welcome line.
func (r *Responder) Greeting() string {
	return r.pick(greetingPool)
}

// MotivationalQuote returns a random encouragement line.
func (r *Responder) MotivationalQuote() string {
	return r.pick(motivationPool)
}

// SelfCareReminder returns a random self-care suggestion.
func (r *Responder) SelfCareReminder() string {
	return r.pick(selfCarePool)
}

// RespondToEmotion answers an explicit emotion label with a reply from the
// corresponding category pool. The returned Response echoes the label.
func (r *Responder) RespondToEmotion(emotion string) Response {
	return Response{
		Message: r.pick(categoryResponses[Classify(emotion)]),
		Emotion: emotion,
	}
}

// emotionLiterals are scanned in RespondToMessage before giving up on
// emotion detection.
var emotionLiterals = []string{"feliz", "triste", "ansioso", "enojado", "tranquilo", "confundido"}

// RespondToMessage answers a free-text chat message. Intents are checked in
// fixed priority order — greeting, gratitude, farewell, help, fatigue — then
// the message is scanned for emotion words, and finally a generic listening
// reply is drawn.
func (r *Responder) RespondToMessage(message string) Response {
	lower := strings.ToLower(message)

	if containsAny(lower, "hola", "buenos", "hey") {
		return Response{Message: r.Greeting()}
	}

	if strings.Contains(lower, "gracias") {
		return Response{Message: gratitudeReply}
	}

	if containsAny(lower, "adiós", "chao", "hasta luego") {
		return Response{Message: farewellReply}
	}

	if containsAny(lower, "ayuda", "necesito", "difícil") {
		return Response{Message: supportReply}
	}

	if containsAny(lower, "cansado", "agotado") {
		return Response{Message: r.SelfCareReminder()}
	}

	for _, emotion := range emotionLiterals {
		if strings.Contains(lower, emotion) {
			return r.RespondToEmotion(emotion)
		}
	}

	return Response{Message: r.pick(listeningPool)}
}

func containsAny(text string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}
