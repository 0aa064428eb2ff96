// Package ansisift interprets the output captured from a monitored terminal session.
//
// It converts SGR escape sequences into styled spans, collapses the noisy rule lines
// that CLI frameworks print, and finds the numbered choices of an interactive prompt
// along with the choice that answers "yes".
//
// Every function is a pure transform of a text snapshot, so a caller that owns a
// growing buffer should re-run them on the current snapshot whenever it changes.
package ansisift

import (
	"errors"
	"fmt"
	"html"
	"html/template"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var ErrReader = errors.New("reader is nil")

// MaxLines is the number of lines a Screen keeps when the Decoder is given no limit.
const MaxLines = 500

// Decoder holds the settings used to turn raw terminal output into a Screen.
// It is not modified after creation and is safe for concurrent use.
type Decoder struct {
	charset  *charmap.Charmap
	palette  Palette
	maxLines int
}

// NewDecoder creates a Decoder that keeps the last maxLines of output.
// If maxLines <= 0, [MaxLines] is used.
//
// Palette can either be Xterm16 or CGA16 and is only used by [Screen.HTML].
//
// Terminal output is usually UTF-8, which is set with charset as a nil value
// or charset as [charmap.XUserDefined]. Output from legacy programs can use
// a charset such as [charmap.CodePage437] or [charmap.ISO8859_1].
func NewDecoder(maxLines int, pal Palette, charset *charmap.Charmap) *Decoder {
	if maxLines <= 0 {
		maxLines = MaxLines
	}
	if charset == nil {
		charset = charmap.XUserDefined
	}
	return &Decoder{
		charset:  charset,
		palette:  pal,
		maxLines: maxLines,
	}
}

// Read reads all of r and returns the normalized Screen.
func (d *Decoder) Read(r io.Reader) (Screen, error) {
	if r == nil {
		return Screen{}, ErrReader
	}
	if d.charset != charmap.XUserDefined {
		r = d.charset.NewDecoder().Reader(r)
	}
	p, err := io.ReadAll(r)
	if err != nil {
		return Screen{}, fmt.Errorf("decoder read: %w", err)
	}
	return d.Screen(string(p)), nil
}

// Screen returns the normalized Screen of the UTF-8 text s.
func (d *Decoder) Screen(s string) Screen {
	return Screen{
		text:    Normalize(s, d.maxLines),
		palette: d.palette,
	}
}

// Screen is a normalized snapshot of terminal output.
// Separator runs are collapsed and only the most recent lines are kept.
type Screen struct {
	text    string
	palette Palette
}

// Text returns the normalized text which can still contain SGR sequences.
func (s Screen) Text() string {
	return s.text
}

// String returns the normalized text without SGR sequences.
func (s Screen) String() string {
	return Strip(s.text)
}

// Spans returns the styled spans of the text.
func (s Screen) Spans() []Span {
	return Parse(s.text)
}

// Options returns the choices of the most recent numbered prompt.
func (s Screen) Options() Options {
	return ExtractOptions(s.text)
}

// Affirmative returns the number of the choice that answers "yes" to the current prompt.
func (s Screen) Affirmative() (string, bool) {
	return Affirmative(s.Options())
}

// Question returns the interactive prompt that the pane is waiting on.
func (s Screen) Question(pane string) (Question, bool) {
	return NewQuestion(pane, s.text)
}

// HTML returns the text as a <pre> fragment, each contiguous run of
// identical attributes is wrapped in a <span style="...">.
func (s Screen) HTML() (template.HTML, error) {
	t, err := template.New("ansi").Parse(`{{define "T"}}<pre>{{ . }}</pre>{{end}}`)
	if err != nil {
		return "", fmt.Errorf("html template parse: %w", err)
	}
	var b strings.Builder
	if err := t.ExecuteTemplate(&b, "T",
		template.HTML(s.spansHTML())); err != nil { //nolint:gosec
		return "", fmt.Errorf("html template execute: %w", err)
	}
	return template.HTML(b.String()), nil //nolint:gosec
}

func (s Screen) spansHTML() string {
	var b strings.Builder
	for _, sp := range Compact(Parse(s.text)) {
		if sp.Style.IsDefault() {
			b.WriteString(html.EscapeString(sp.Text))
			continue
		}
		b.WriteString(`<span style="`)
		b.WriteString(html.EscapeString(sp.Style.CSS(s.palette)))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(sp.Text))
		b.WriteString(`</span>`)
	}
	return b.String()
}

// CSS returns the style as CSS properties using the palette for the basic and bright colors.
func (s Style) CSS(p Palette) string {
	parts := []string{}
	if c, ok := s.FG.RGB(p); ok {
		parts = append(parts, "color:#"+c.Hex()+";")
	}
	if s.Bold {
		parts = append(parts, "font-weight:bold;")
	}
	if s.Dim {
		parts = append(parts, "opacity:0.6;")
	}
	if s.Italic {
		parts = append(parts, "font-style:italic;")
	}
	if s.Underline {
		parts = append(parts, "text-decoration:underline;")
	}
	return strings.Join(parts, "")
}

// String returns the text found in the Reader, with the SGR sequences removed
// and normalized to the last maxLines.
// It assumes the Reader is using UTF-8 encoding.
// If maxLines is <= 0, [MaxLines] is used.
func String(r io.Reader, maxLines int) (string, error) {
	scr, err := NewDecoder(maxLines, Xterm16, nil).Read(r)
	if err != nil {
		return "", err
	}
	return scr.String(), nil
}
