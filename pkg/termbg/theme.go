package termbg

// Theme is the light/dark classification of a background.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Luminance returns the ITU-R BT.601 luma of c on the 16-bit channel scale.
func (c RGB) Luminance() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// Classify returns ThemeLight when c's luminance is strictly above half
// scale (32768) and ThemeDark otherwise.
func Classify(c RGB) Theme {
	if c.Luminance() > 32768 {
		return ThemeLight
	}
	return ThemeDark
}
