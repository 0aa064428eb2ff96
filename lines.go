package ansisift

import "strings"

// rules are the box-drawing and ASCII glyphs that make up a separator line.
const rules = "─━│┃═║┄┅┆┇┈┉┊┋╌╍╎╏╴╵╶╷╸╹╺╻╼╽╾╿▔▁—–-_|"

// IsSeparator reports whether the line is a horizontal or vertical rule,
// which is a non-empty line built only from rule glyphs once the SGR sequences and
// whitespace are removed.
func IsSeparator(line string) bool {
	s := strings.TrimSpace(Strip(line))
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(rules, r) {
			return false
		}
	}
	return true
}

// CollapseSeparators replaces each run of two or more consecutive separator lines
// with the first line of the run. Isolated separators are kept.
func CollapseSeparators(s string) string {
	body, eol := splitEOL(s)
	lines := strings.Split(body, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i > 0 && IsSeparator(line) && IsSeparator(lines[i-1]) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n") + eol
}

// Tail returns the last k lines of s. A final newline terminates the last line
// and is kept, but it does not count as an extra line.
// When k <= 0, s is returned unchanged.
func Tail(s string, k int) string {
	if k <= 0 {
		return s
	}
	body, eol := splitEOL(s)
	n := 0
	for i := len(body) - 1; i >= 0; i-- {
		if body[i] != '\n' {
			continue
		}
		n++
		if n == k {
			return body[i+1:] + eol
		}
	}
	return s
}

// Normalize collapses the separator lines of s and then keeps the last k lines.
func Normalize(s string, k int) string {
	return Tail(CollapseSeparators(s), k)
}

// Lines splits s into lines, a final newline does not create an empty line.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	body, _ := splitEOL(s)
	return strings.Split(body, "\n")
}

func splitEOL(s string) (string, string) {
	if body, ok := strings.CutSuffix(s, "\n"); ok {
		return body, "\n"
	}
	return s, ""
}
