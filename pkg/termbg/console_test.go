package termbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleAttributeColor(t *testing.T) {
	tests := []struct {
		name string
		attr uint16
		want RGB
	}{
		{"black", 0x0000, rgb8(0, 0, 0)},
		{"foreground bits ignored", 0x000f, rgb8(0, 0, 0)},
		{"red", consoleBackgroundRed, rgb8(128, 0, 0)},
		{"blue", consoleBackgroundBlue, rgb8(0, 0, 128)},
		{"gray", consoleBackgroundRed | consoleBackgroundGreen | consoleBackgroundBlue, rgb8(192, 192, 192)},
		{"dark gray", consoleBackgroundIntensity, rgb8(128, 128, 128)},
		{"bright yellow", consoleBackgroundRed | consoleBackgroundGreen | consoleBackgroundIntensity, rgb8(255, 255, 0)},
		{"white", 0x00f0, rgb8(255, 255, 255)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, consoleAttributeColor(tt.attr))
		})
	}
}
