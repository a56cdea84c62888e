package serena

import "strings"

// Category is one of the closed set of emotion classes a text can be
// classified into. CategoryDefault is the fallback when nothing matches.
type Category string

const (
	CategoryHappy    Category = "happy"
	CategorySad      Category = "sad"
	CategoryAnxious  Category = "anxious"
	CategoryAngry    Category = "angry"
	CategoryCalm     Category = "calm"
	CategoryConfused Category = "confused"
	CategoryDefault  Category = "default"
)

// classifyRule binds a set of trigger substrings to a category.
type classifyRule struct {
	triggers []string
	category Category
}

// classifyRules are evaluated in order; the first category with any trigger
// contained in the text wins.
var classifyRules = []classifyRule{
	{[]string{"feliz", "alegre", "contento"}, CategoryHappy},
	{[]string{"triste", "deprimido"}, CategorySad},
	{[]string{"ansioso", "nervioso", "preocupado"}, CategoryAnxious},
	{[]string{"enojado", "molesto", "frustrado"}, CategoryAngry},
	{[]string{"tranquilo", "relajado", "sereno"}, CategoryCalm},
	{[]string{"confundido", "perdido"}, CategoryConfused},
}

// Classify maps free text to a Category. Matching is by lower-cased substring
// containment, so a trigger inside an unrelated word still counts; that
// imprecision is part of the contract.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, rule := range classifyRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return rule.category
			}
		}
	}
	return CategoryDefault
}
