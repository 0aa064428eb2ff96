package ansisift

import "fmt"

// Palette sets the ANSI 4-bit color codes to a colorset of RGB values.
// The ANSI standard never formalized color values and it was left to the system to determine.
// Wikipedia has a [useful table] of the common palettes.
//
// [useful table]: https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
type Palette uint

const (
	Xterm16 Palette = iota // Xterm terminal emulator program for the X Window System colorset from the mid-1980s
	CGA16                  // Color Graphics Adapter colorset defined by IBM for the PC in 1981
)

// RGB is a resolved 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a six digit rrggbb hexadecimal string.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements the [image/color.Color] interface, the color is always opaque.
func (c RGB) RGBA() (uint32, uint32, uint32, uint32) {
	r, g, b := uint32(c.R), uint32(c.G), uint32(c.B)
	return r<<8 | r, g<<8 | g, b<<8 | b, 0xffff
}

// Xterm returns the 8 basic and 8 bright colors used by xterm.
func Xterm() [16]RGB {
	return [16]RGB{
		{0x00, 0x00, 0x00}, // black
		{0x80, 0x00, 0x00}, // maroon
		{0x00, 0x80, 0x00}, // green
		{0x80, 0x80, 0x00}, // olive
		{0x00, 0x00, 0x80}, // navy
		{0x80, 0x00, 0x80}, // purple
		{0x00, 0x80, 0x80}, // teal
		{0xc0, 0xc0, 0xc0}, // silver
		{0x80, 0x80, 0x80}, // gray
		{0xff, 0x00, 0x00}, // red
		{0x00, 0xff, 0x00}, // lime
		{0xff, 0xff, 0x00}, // yellow
		{0x00, 0x00, 0xff}, // blue
		{0xff, 0x00, 0xff}, // fuchsia
		{0x00, 0xff, 0xff}, // aqua
		{0xff, 0xff, 0xff}, // white
	}
}

// CGA returns the 16 colors of the IBM Color Graphics Adapter.
func CGA() [16]RGB {
	return [16]RGB{
		{0x00, 0x00, 0x00}, // black
		{0xaa, 0x00, 0x00}, // red
		{0x00, 0xaa, 0x00}, // green
		{0xaa, 0x55, 0x00}, // brown
		{0x00, 0x00, 0xaa}, // blue
		{0xaa, 0x00, 0xaa}, // magenta
		{0x00, 0xaa, 0xaa}, // cyan
		{0xaa, 0xaa, 0xaa}, // gray
		{0x55, 0x55, 0x55}, // dark gray
		{0xff, 0x55, 0x55}, // light red
		{0x55, 0xff, 0x55}, // light green
		{0xff, 0xff, 0x55}, // yellow
		{0x55, 0x55, 0xff}, // light blue
		{0xff, 0x55, 0xff}, // light magenta
		{0x55, 0xff, 0xff}, // light cyan
		{0xff, 0xff, 0xff}, // white
	}
}

// Colors returns the 16 colors of the palette, unknown palettes use xterm.
func (p Palette) Colors() [16]RGB {
	if p == CGA16 {
		return CGA()
	}
	return Xterm()
}

// ColorKind describes how a Color was selected.
type ColorKind uint8

const (
	ColorDefault ColorKind = iota // ColorDefault is the terminal's own foreground
	ColorBasic                    // ColorBasic is one of the 8 colors selected by codes 30-37
	ColorBright                   // ColorBright is one of the 8 colors selected by codes 90-97
	ColorRGB                      // ColorRGB is a resolved 256-color or truecolor value
)

// Color is a foreground color. The zero value is the default color.
//
// Basic and bright colors keep their palette index so the palette
// can be chosen at render time, all other colors are resolved to RGB while parsing.
type Color struct {
	Kind  ColorKind
	Index uint8 // Index is 0-7 for basic and bright colors
	Value RGB   // Value is only used by ColorRGB
}

// Basic returns the basic palette color for index 0-7.
func Basic(index int) Color {
	return Color{Kind: ColorBasic, Index: uint8(clamp(index, 0, 7))} //nolint:mnd
}

// Bright returns the bright palette color for index 0-7.
func Bright(index int) Color {
	return Color{Kind: ColorBright, Index: uint8(clamp(index, 0, 7))} //nolint:mnd
}

// TrueColor returns a color from red, green, blue values that are clamped to 0-255.
func TrueColor(r, g, b int) Color {
	const hi = 255
	return Color{Kind: ColorRGB, Value: RGB{
		R: uint8(clamp(r, 0, hi)),
		G: uint8(clamp(g, 0, hi)),
		B: uint8(clamp(b, 0, hi)),
	}}
}

// IsDefault reports whether c is the default terminal color.
func (c Color) IsDefault() bool {
	return c.Kind == ColorDefault
}

// RGB collapses the color to an RGB value using the palette.
// The default color has no value and returns false.
func (c Color) RGB(p Palette) (RGB, bool) {
	switch c.Kind {
	case ColorBasic:
		return p.Colors()[c.Index&7], true //nolint:mnd
	case ColorBright:
		return p.Colors()[c.Index&7+8], true //nolint:mnd
	case ColorRGB:
		return c.Value, true
	}
	return RGB{}, false
}

// Resolve256 takes a Xterm 256-color code and returns the RGB value using the xterm palette.
// Codes outside of 0-255 are clamped.
func Resolve256(index int) RGB {
	return Resolve256With(index, Xterm16)
}

// Resolve256With takes a Xterm 256-color code and returns the RGB value.
// The Palette is only used for the system colors between 0 and 15.
//
// Some helpful links, [256 colors cheat sheet] and [8-bit colors wiki].
//
// [256 colors cheat sheet]: https://www.ditig.com/256-colors-cheat-sheet
// [8-bit colors wiki]: https://en.wikipedia.org/wiki/ANSI_escape_code#8-bit
//
//nolint:mnd
func Resolve256With(index int, p Palette) RGB {
	index = clamp(index, 0, 255)
	switch {
	case index <= 15:
		return p.Colors()[index]
	case index <= 231:
		return XtermColor(index)
	}
	return XtermGray(index)
}

// XtermColor returns the RGB value for the 6×6×6 color cube codes 16-231.
// Other codes are clamped into the cube.
//
//nolint:mnd
func XtermColor(code int) RGB {
	c := clamp(code, 16, 231) - 16
	calc := func(n int) uint8 {
		if n == 0 {
			return 0
		}
		return uint8(55 + n*40)
	}
	return RGB{R: calc(c / 36), G: calc((c % 36) / 6), B: calc(c % 6)}
}

// XtermGray returns the RGB value for the Xterm greyscale codes 232-255.
// Other codes are clamped into the ramp.
//
//nolint:mnd
func XtermGray(code int) RGB {
	level := clamp(code, 232, 255) - 232
	v := uint8(8 + level*10)
	return RGB{R: v, G: v, B: v}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
