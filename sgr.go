package ansisift

import (
	"math"
	"strings"
)

const (
	ESC = 0x1b // ESC is the escape control character code
	CSI = '['  // CSI follows ESC to begin a control sequence
	SGR = 'm'  // SGR is the final byte of a select graphic rendition sequence

	Reset        = 0
	Bold         = 1
	Dim          = 2
	Italic       = 3
	Underline    = 4
	NotBoldFaint = 22
	NotItalic    = 23
	NotUnderline = 24
	FG1st        = 30
	FGEnd        = 37
	SetFG        = 38
	DefaultFG    = 39
	BrightFG1st  = 90
	BrightFGEnd  = 97
)

// Style describes the attributes applied to a run of text.
// The zero value is plain, unstyled text and styles are comparable with ==.
type Style struct {
	FG        Color // FG is the foreground color
	Bold      bool  // Bold toggles a heavier font weight
	Dim       bool  // Dim toggles a fainter color
	Italic    bool  // Italic toggles a slanted font
	Underline bool  // Underline toggles a underline text decoration
}

// IsDefault reports whether s has no attributes.
func (s Style) IsDefault() bool {
	return s == Style{}
}

// Span is a run of visible text and the style it is printed with.
type Span struct {
	Text  string
	Style Style
}

// TokenKind separates literal text from SGR sequences.
type TokenKind uint8

const (
	TokenText TokenKind = iota // TokenText is literal, printable text
	TokenSGR                   // TokenSGR is a complete ESC [ ... m sequence
)

// Token is either a run of literal text or a parsed SGR sequence.
type Token struct {
	Kind   TokenKind
	Text   string // Text is the literal text or the raw escape sequence
	Params []int  // Params of a SGR sequence, an empty list is returned as [0]
}

// Tokenize scans s for SGR sequences of the form ESC [ <params> m where params
// are zero or more ';' separated decimal numbers.
// Any other bytes, including incomplete or unsupported escape sequences, are literal text.
func Tokenize(s string) []Token {
	var tokens []Token
	start := 0
	for i := 0; i < len(s); {
		if s[i] != ESC {
			i++
			continue
		}
		end, ok := sgrEnd(s, i)
		if !ok {
			i++
			continue
		}
		if start < i {
			tokens = append(tokens, Token{Kind: TokenText, Text: s[start:i]})
		}
		tokens = append(tokens, Token{Kind: TokenSGR, Text: s[i:end], Params: params(s[i+2 : end-1])})
		i = end
		start = end
	}
	if start < len(s) {
		tokens = append(tokens, Token{Kind: TokenText, Text: s[start:]})
	}
	return tokens
}

// sgrEnd returns the index after the final byte of the SGR sequence that begins at i.
func sgrEnd(s string, i int) (int, bool) {
	j := i + 1
	if j >= len(s) || s[j] != CSI {
		return 0, false
	}
	for j++; j < len(s); j++ {
		b := s[j]
		switch {
		case b == SGR:
			return j + 1, true
		case b == ';', '0' <= b && b <= '9':
			continue
		default:
			return 0, false
		}
	}
	// truncated sequence
	return 0, false
}

// params splits the parameter bytes on ';'.
// Empty groups are read as 0 and oversized numbers saturate.
func params(raw string) []int {
	if raw == "" {
		return []int{Reset}
	}
	fields := strings.Split(raw, ";")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n := 0
		for k := range len(f) {
			d := int(f[k] - '0')
			if n > (math.MaxInt-d)/10 { //nolint:mnd
				n = math.MaxInt
				break
			}
			n = n*10 + d //nolint:mnd
		}
		out = append(out, n)
	}
	return out
}

// Parse converts s into styled spans in display order.
// The style state begins as the default on every call, and
// the concatenated span text always equals [Strip] of s.
func Parse(s string) []Span {
	var spans []Span
	cur := Style{}
	for _, t := range Tokenize(s) {
		if t.Kind == TokenSGR {
			cur = ApplySGR(t.Params, cur)
			continue
		}
		spans = append(spans, Span{Text: t.Text, Style: cur})
	}
	return spans
}

// Strip returns s with every SGR sequence removed.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, t := range Tokenize(s) {
		if t.Kind == TokenText {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

// Plain reports whether the spans can be printed as plain text,
// which is when there is at most one span and it has the default style.
func Plain(spans []Span) bool {
	switch len(spans) {
	case 0:
		return true
	case 1:
		return spans[0].Style.IsDefault()
	}
	return false
}

// Compact joins neighbouring spans that share an identical style.
// Sequences that repeat the current style, such as "\x1b[1mA\x1b[1mB", otherwise produce split spans.
func Compact(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	var run strings.Builder
	for i, sp := range spans {
		if i > 0 && sp.Style != spans[i-1].Style {
			out = append(out, Span{Text: run.String(), Style: spans[i-1].Style})
			run.Reset()
		}
		run.WriteString(sp.Text)
	}
	if len(spans) > 0 {
		out = append(out, Span{Text: run.String(), Style: spans[len(spans)-1].Style})
	}
	return out
}

// ApplySGR applies SGR parameters in order to the current style and returns the new Style.
// Unknown codes are ignored and an incomplete extended color stops the processing
// of the remaining parameters, neither of which are errors.
func ApplySGR(params []int, cur Style) Style { //nolint:gocyclo
	attr := cur
	if len(params) == 0 {
		return Style{}
	}
	const xterm, truecolor = 5, 2
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == Reset:
			attr = Style{}
		case p == Bold:
			attr.Bold = true
		case p == Dim:
			attr.Dim = true
		case p == Italic:
			attr.Italic = true
		case p == Underline:
			attr.Underline = true
		case p == NotBoldFaint:
			attr.Bold = false
			attr.Dim = false
		case p == NotItalic:
			attr.Italic = false
		case p == NotUnderline:
			attr.Underline = false
		case FG1st <= p && p <= FGEnd:
			attr.FG = Basic(p - FG1st)
		case p == DefaultFG:
			attr.FG = Color{}
		case BrightFG1st <= p && p <= BrightFGEnd:
			attr.FG = Bright(p - BrightFG1st)
		case p == SetFG:
			// extended color: either 5;n (256 color) or 2;r;g;b (truecolor)
			if i+1 >= len(params) {
				return attr
			}
			switch params[i+1] {
			case xterm:
				if i+2 >= len(params) {
					return attr
				}
				attr.FG = Color{Kind: ColorRGB, Value: Resolve256(params[i+2])}
				i += 2
			case truecolor:
				if i+4 >= len(params) {
					return attr
				}
				attr.FG = TrueColor(params[i+2], params[i+3], params[i+4])
				i += 4
			default:
				// unknown mode, only the 38 is dropped
			}
		}
	}
	return attr
}
