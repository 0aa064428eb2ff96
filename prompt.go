package ansisift

import (
	"strings"
	"unicode"
)

// PromptLines is the number of trailing lines scanned for numbered options,
// older lists are considered stale.
const PromptLines = 20

// bullets are the selection markers that interactive CLI tools print before a choice.
const bullets = ">›»❯▸▶"

// Option is a single numbered choice of an interactive prompt.
type Option struct {
	Number string // Number is the decimal digits exactly as printed
	Label  string // Label is the trimmed text that follows the number
}

// Options is an ordered group of choices from one contiguous block of lines.
type Options []Option

// ParseOption matches a numbered choice line such as "1. Yes" or "  ❯ 2. No".
// A prefix of whitespace and bullet glyphs is ignored, then the line must have
// one or more digits, a period, at least one space and a non-empty label.
func ParseOption(line string) (Option, bool) {
	s := strings.TrimLeftFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(bullets, r)
	})
	digits := 0
	for digits < len(s) && '0' <= s[digits] && s[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return Option{}, false
	}
	rest, ok := strings.CutPrefix(s[digits:], ".")
	if !ok || rest == "" || rest[0] != ' ' {
		return Option{}, false
	}
	label := strings.TrimSpace(rest)
	if label == "" {
		return Option{}, false
	}
	return Option{Number: s[:digits], Label: label}, true
}

// IsContinuation reports whether the line is indented by a tab or at least two spaces,
// which is how a long option label wraps onto the next line.
func IsContinuation(line string) bool {
	return strings.HasPrefix(line, "\t") || strings.HasPrefix(line, "  ")
}

// keepsGroup reports whether a line that is not an option leaves the current group open.
func keepsGroup(line string) bool {
	return strings.TrimSpace(line) == "" || IsSeparator(line) || IsContinuation(line)
}

// ExtractOptions returns the most recent contiguous block of numbered options
// found within the last [PromptLines] lines of s, or nil when there are none.
// SGR sequences in s are ignored.
//
// Blank, separator and indented continuation lines do not end a block,
// any other line does. Only the last block is returned as an earlier block is
// assumed to be a prompt that has already been answered.
func ExtractOptions(s string) Options {
	lines := Lines(Strip(s))
	if len(lines) > PromptLines {
		lines = lines[len(lines)-PromptLines:]
	}
	var last, cur Options
	for _, line := range lines {
		if opt, ok := ParseOption(line); ok {
			cur = append(cur, opt)
			continue
		}
		if keepsGroup(line) {
			continue
		}
		if len(cur) > 0 {
			last = cur
			cur = nil
		}
	}
	if len(cur) > 0 {
		return cur
	}
	return last
}

// Numbers returns the option numbers in order.
func (o Options) Numbers() []string {
	out := make([]string, 0, len(o))
	for _, opt := range o {
		out = append(out, opt.Number)
	}
	return out
}

// Find returns the option with the number.
func (o Options) Find(number string) (Option, bool) {
	for _, opt := range o {
		if opt.Number == number {
			return opt, true
		}
	}
	return Option{}, false
}
