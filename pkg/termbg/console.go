package termbg

// Background bits of a Windows console character attribute.
const (
	consoleBackgroundBlue      = 0x0010
	consoleBackgroundGreen     = 0x0020
	consoleBackgroundRed       = 0x0040
	consoleBackgroundIntensity = 0x0080
)

// consolePalette is the legacy Windows console palette indexed by
// intensity<<3 | blue<<2 | green<<1 | red.
var consolePalette = [16][3]uint8{
	{0, 0, 0},
	{128, 0, 0},
	{0, 128, 0},
	{128, 128, 0},
	{0, 0, 128},
	{128, 0, 128},
	{0, 128, 128},
	{192, 192, 192},
	{128, 128, 128},
	{255, 0, 0},
	{0, 255, 0},
	{255, 255, 0},
	{0, 0, 255},
	{255, 0, 255},
	{0, 255, 255},
	{255, 255, 255},
}

// consoleAttributeColor maps the background bits of attr to a color.
func consoleAttributeColor(attr uint16) RGB {
	var idx int
	if attr&consoleBackgroundRed != 0 {
		idx |= 1
	}
	if attr&consoleBackgroundGreen != 0 {
		idx |= 2
	}
	if attr&consoleBackgroundBlue != 0 {
		idx |= 4
	}
	if attr&consoleBackgroundIntensity != 0 {
		idx |= 8
	}
	c := consolePalette[idx]
	return rgb8(c[0], c[1], c[2])
}
