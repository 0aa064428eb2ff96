package ansisift

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Affirmative returns the number of the option that unconditionally answers "yes".
//
// An option that says yes for the rest of the session, such as
// "Yes, and don't ask again this session", is preferred over
// an option with a label that begins with "yes".
// It returns false when no option qualifies, which callers should treat as
// a prompt that needs a human answer.
func Affirmative(opts Options) (string, bool) {
	for _, opt := range opts {
		if yesForSession(opt.Label) {
			return opt.Number, true
		}
	}
	for _, opt := range opts {
		if startsWithYes(opt.Label) {
			return opt.Number, true
		}
	}
	return "", false
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// yesForSession reports whether the word "yes" is followed later by the word "session".
func yesForSession(label string) bool {
	words := strings.FieldsFunc(fold(label), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	yes := slices.Index(words, "yes")
	if yes < 0 {
		return false
	}
	return slices.Contains(words[yes+1:], "session")
}

func startsWithYes(label string) bool {
	return strings.HasPrefix(fold(strings.TrimLeftFunc(label, unicode.IsSpace)), "yes")
}
