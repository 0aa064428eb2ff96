package ansisift

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ContextLines is the number of trailing lines kept as the context of a question.
const ContextLines = 30

// indicators are the key hints printed under a menu that is waiting for input.
// Option menus print "Enter to select · ↑/↓ to navigate · Esc to cancel",
// while tool permission prompts print "Esc to cancel · Tab to amend".
var indicators = [...]string{
	"enter to select",
	"to navigate",
	"tab to amend",
	"esc to cancel",
}

// Question is a prompt from a monitored session that is awaiting an answer.
type Question struct {
	ID      string  // ID is stable for as long as the same options are displayed in the pane
	Pane    string  // Pane identifies the monitored terminal
	Options Options // Options are the choices on offer
	Context string  // Context is the text leading up to the choices
}

// HasPromptIndicator reports whether the last non-blank line of s is a key hint
// of an interactive menu.
func HasPromptIndicator(s string) bool {
	lines := Lines(s)
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		return isIndicator(line)
	}
	return false
}

func isIndicator(line string) bool {
	lower := strings.ToLower(line)
	for _, ind := range indicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// InteractiveOptions returns the options of s, but only when s ends with a prompt indicator.
// Plain numbered lists such as a plan or changelog are otherwise ignored.
func InteractiveOptions(s string) Options {
	opts := ExtractOptions(s)
	if len(opts) == 0 || !HasPromptIndicator(s) {
		return nil
	}
	return opts
}

// Context returns the last [ContextLines] lines of s without the menu key hints
// and with the leading and trailing blank lines removed.
func Context(s string) string {
	lines := Lines(s)
	if len(lines) > ContextLines {
		lines = lines[len(lines)-ContextLines:]
	}
	keep := make([]string, 0, len(lines))
	for _, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))
		if strings.Contains(lower, "enter to select") ||
			strings.Contains(lower, "to navigate") ||
			strings.Contains(lower, "esc to cancel") {
			continue
		}
		keep = append(keep, line)
	}
	for len(keep) > 0 && strings.TrimSpace(keep[0]) == "" {
		keep = keep[1:]
	}
	for len(keep) > 0 && strings.TrimSpace(keep[len(keep)-1]) == "" {
		keep = keep[:len(keep)-1]
	}
	return strings.Join(keep, "\n")
}

// QuestionID returns an identifier built from the pane and a hash of the options.
// The same options in the same pane always give the same ID.
func QuestionID(pane string, opts Options) string {
	d := xxhash.New()
	for _, opt := range opts {
		_, _ = d.WriteString(opt.Number)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(opt.Label)
		_, _ = d.Write([]byte{0})
	}
	return pane + ":" + strconv.FormatUint(d.Sum64(), 16)
}

// NewQuestion builds the question that is displayed in the pane's output s.
// It returns false when s does not end with an interactive prompt.
func NewQuestion(pane, s string) (Question, bool) {
	s = Strip(s)
	opts := InteractiveOptions(s)
	if len(opts) == 0 {
		return Question{}, false
	}
	return Question{
		ID:      QuestionID(pane, opts),
		Pane:    pane,
		Options: opts,
		Context: Context(s),
	}, true
}
