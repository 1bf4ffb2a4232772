package termbg

import (
	"strconv"
	"strings"
)

// EnvColorFGBG holds "fg;bg" palette indexes, set by rxvt and a few others.
const EnvColorFGBG = "COLORFGBG"

// rxvtPalette is rxvt's default 16-color table.
var rxvtPalette = [16][3]uint8{
	{0, 0, 0},       // black
	{205, 0, 0},     // red
	{0, 205, 0},     // green
	{205, 205, 0},   // yellow
	{0, 0, 238},     // blue
	{205, 0, 205},   // magenta
	{0, 205, 205},   // cyan
	{229, 229, 229}, // white
	{127, 127, 127}, // bright black
	{255, 0, 0},     // bright red
	{0, 255, 0},     // bright green
	{255, 255, 0},   // bright yellow
	{92, 92, 255},   // bright blue
	{255, 0, 255},   // bright magenta
	{0, 255, 255},   // bright cyan
	{255, 255, 255}, // bright white
}

// colorFromEnv reads the background palette index from COLORFGBG. Both the
// two-field "fg;bg" form and rxvt-unicode's "fg;default;bg" form are
// accepted; the background is always the last field.
func colorFromEnv(env Env) (RGB, error) {
	raw, ok := env.LookupEnv(EnvColorFGBG)
	if !ok {
		return RGB{}, ErrUnsupported
	}

	fields := strings.Split(raw, ";")
	if len(fields) < 2 || len(fields) > 3 {
		return RGB{}, &MalformedError{Raw: raw, Reason: "want fg;bg"}
	}
	idx, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return RGB{}, &MalformedError{Raw: raw, Reason: "background is not a number"}
	}
	if idx < 0 || idx >= len(rxvtPalette) {
		return RGB{}, &MalformedError{Raw: raw, Reason: "background index out of range"}
	}
	c := rxvtPalette[idx]
	return rgb8(c[0], c[1], c[2]), nil
}
