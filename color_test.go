package ansisift_test

import (
	"testing"

	"github.com/bengarrett/ansisift"
	"github.com/nalgeon/be"
)

func TestResolve256System(t *testing.T) {
	t.Parallel()
	xterm := ansisift.Xterm()
	for i := range 16 {
		be.Equal(t, ansisift.Resolve256(i), xterm[i])
	}
	be.Equal(t, ansisift.Resolve256With(1, ansisift.CGA16), ansisift.RGB{R: 0xaa})
	be.Equal(t, ansisift.Resolve256With(9, ansisift.CGA16), ansisift.RGB{R: 0xff, G: 0x55, B: 0x55})
}

func TestResolve256(t *testing.T) {
	t.Parallel()
	tests := []struct {
		code int
		hex  string
	}{
		{16, "000000"},
		{93, "8700ff"},
		{94, "875f00"},
		{195, "d7ffff"},
		{196, "ff0000"},
		{231, "ffffff"},
		{232, "080808"},
		{244, "808080"},
		{255, "eeeeee"},
	}
	for _, tt := range tests {
		be.Equal(t, ansisift.Resolve256(tt.code).Hex(), tt.hex)
	}
}

func TestResolve256Clamp(t *testing.T) {
	t.Parallel()
	be.Equal(t, ansisift.Resolve256(-5), ansisift.Xterm()[0])
	be.Equal(t, ansisift.Resolve256(999), ansisift.RGB{R: 238, G: 238, B: 238})
	be.Equal(t, ansisift.XtermColor(0), ansisift.RGB{})
	be.Equal(t, ansisift.XtermGray(300), ansisift.RGB{R: 238, G: 238, B: 238})
}

func TestColorRGB(t *testing.T) {
	t.Parallel()
	c, ok := ansisift.Bright(1).RGB(ansisift.Xterm16)
	be.True(t, ok)
	be.Equal(t, c, ansisift.RGB{R: 255})
	c, ok = ansisift.Basic(1).RGB(ansisift.CGA16)
	be.True(t, ok)
	be.Equal(t, c.Hex(), "aa0000")
	_, ok = ansisift.Color{}.RGB(ansisift.Xterm16)
	be.True(t, !ok)
	be.True(t, ansisift.Color{}.IsDefault())
	// indexes are clamped
	be.Equal(t, ansisift.Basic(12), ansisift.Basic(7))
}

func TestRGBA(t *testing.T) {
	t.Parallel()
	r, g, b, a := ansisift.RGB{R: 255, G: 128}.RGBA()
	be.Equal(t, r, uint32(0xffff))
	be.Equal(t, g, uint32(0x8080))
	be.Equal(t, b, uint32(0))
	be.Equal(t, a, uint32(0xffff))
}
