package termbg

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with 16-bit channels (0–65535 each).
type RGB struct {
	R, G, B uint16
}

// rgb8 scales 8-bit channels to the 16-bit range the way terminals report
// palette entries (v*256, so 0xff becomes 0xff00).
func rgb8(r, g, b uint8) RGB {
	return RGB{R: uint16(r) << 8, G: uint16(g) << 8, B: uint16(b) << 8}
}

// String formats c the way xterm reports it.
func (c RGB) String() string {
	return fmt.Sprintf("rgb:%04x/%04x/%04x", c.R, c.G, c.B)
}

// Colorful converts c to a go-colorful color.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 0xffff,
		G: float64(c.G) / 0xffff,
		B: float64(c.B) / 0xffff,
	}
}

// Hex returns the high byte of each channel as a "#rrggbb" string.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R>>8) / 0xff,
		G: float64(c.G>>8) / 0xff,
		B: float64(c.B>>8) / 0xff,
	}.Hex()
}
