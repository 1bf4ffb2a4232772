package termbg

import (
	"strconv"
	"strings"
)

// decodeX11Color parses the body of an X11 color spec, "rrrr/gggg/bbbb",
// where each component has one to four hex digits. Narrow components are
// scaled by shifting left, so "3" is 0x3000 and "33" is 0x3300.
func decodeX11Color(s string) (RGB, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return RGB{}, &MalformedError{Raw: s, Reason: "want three components"}
	}

	var ch [3]uint16
	for i, p := range parts {
		v, ok := decodeHexComponent(p)
		if !ok {
			return RGB{}, &MalformedError{Raw: s, Reason: "bad component " + strconv.Quote(p)}
		}
		ch[i] = v
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func decodeHexComponent(s string) (uint16, bool) {
	if len(s) == 0 || len(s) > 4 {
		return 0, false
	}
	var v uint16
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint16(d)
	}
	return v << ((4 - len(s)) * 4), true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
