package ansisift_test

import (
	"strings"
	"testing"

	"github.com/bengarrett/ansisift"
	"github.com/nalgeon/be"
)

func TestParseOption(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line   string
		number string
		label  string
	}{
		{"1. Yes", "1", "Yes"},
		{"  ❯ 2. No, thanks  ", "2", "No, thanks"},
		{"› 10. Ten", "10", "Ten"},
		{">▶ 3.  spaced", "3", "spaced"},
		{"\t» 4. Tabbed", "4", "Tabbed"},
		{"007. Bond", "007", "Bond"},
	}
	for _, tt := range tests {
		opt, ok := ansisift.ParseOption(tt.line)
		be.True(t, ok)
		be.Equal(t, opt, ansisift.Option{Number: tt.number, Label: tt.label})
	}
	for _, line := range []string{"", "1.Yes", "1. ", "1.", "1) Yes", "a. b", "- 1. x", "Step 1. do", "1.5 x"} {
		_, ok := ansisift.ParseOption(line)
		be.True(t, !ok)
	}
}

func TestIsContinuation(t *testing.T) {
	t.Parallel()
	be.True(t, ansisift.IsContinuation("  wrapped"))
	be.True(t, ansisift.IsContinuation("\twrapped"))
	be.True(t, !ansisift.IsContinuation(" single"))
	be.True(t, !ansisift.IsContinuation("text"))
}

func TestExtractOptionsLastGroup(t *testing.T) {
	t.Parallel()
	s := strings.Join([]string{"1. Yes", "2. No", "", "some unrelated text", "3. Stray"}, "\n")
	be.Equal(t, ansisift.ExtractOptions(s), ansisift.Options{{Number: "3", Label: "Stray"}})

	s = "1. A\n2. B\nlog\n1. C\nlog\n"
	be.Equal(t, ansisift.ExtractOptions(s), ansisift.Options{{Number: "1", Label: "C"}})
}

func TestExtractOptionsKeepsGroup(t *testing.T) {
	t.Parallel()
	s := "Pick one\n" +
		"1. Yes\n" +
		"\n" +
		"────────\n" +
		"2. No\n" +
		"   wrapped description of no\n" +
		"\t more description\n" +
		"3. Maybe\n"
	opts := ansisift.ExtractOptions(s)
	be.Equal(t, opts.Numbers(), []string{"1", "2", "3"})
	opt, ok := opts.Find("3")
	be.True(t, ok)
	be.Equal(t, opt.Label, "Maybe")
	_, ok = opts.Find("4")
	be.True(t, !ok)
}

func TestExtractOptionsTrailingText(t *testing.T) {
	t.Parallel()
	// the group is still the last completed one when text follows it
	s := "Continue?\n 1. Yes\n 2. No\n\n Esc to cancel\n"
	be.Equal(t, ansisift.ExtractOptions(s).Numbers(), []string{"1", "2"})
}

func TestExtractOptionsStale(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	b.WriteString("1. Old\n2. Older\n")
	for range ansisift.PromptLines {
		b.WriteString("\n")
	}
	be.Equal(t, len(ansisift.ExtractOptions(b.String())), 0)
	be.Equal(t, len(ansisift.ExtractOptions("")), 0)
	be.Equal(t, len(ansisift.ExtractOptions("no options here\n")), 0)
}

func TestExtractOptionsSGR(t *testing.T) {
	t.Parallel()
	s := "\x1b[1mDo you want to proceed?\x1b[0m\n" +
		"\x1b[36m❯ 1. Yes\x1b[0m\n" +
		"  \x1b[2m2. No\x1b[0m\n"
	be.Equal(t, ansisift.ExtractOptions(s), ansisift.Options{
		{Number: "1", Label: "Yes"},
		{Number: "2", Label: "No"},
	})
}
