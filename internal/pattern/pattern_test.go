package pattern

import (
	"slices"
	"testing"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
	"github.com/stretchr/testify/assert"
)

func TestWithBrightness(t *testing.T) {
	tt := []struct {
		name   string
		input  uint32
		light  uint32
		output uint32
	}{
		{"full brightness red", 0xff0000, 100, 0xff0000},
		{"full brightness green", 0x00ff00, 100, 0x00ff00},
		{"full brightness blue", 0x0000ff, 100, 0x0000ff},
		{"over full brightness", 0x123456, 250, 0x123456},
		{"zero brightness red", 0xff0000, 0, 0x000000},
		{"zero brightness green", 0x00ff00, 0, 0x000000},
		{"zero brightness blue", 0x0000ff, 0, 0x000000},
		{"50 percent", 0x806040, 50, 0x403020},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			o := WithBrightness(ws2812.FromHex(tc.input), tc.light)
			assert.Equal(t, tc.output, o.Hex())
		})
	}
}

func TestWheel(t *testing.T) {
	assert.Equal(t, ws2812.RGB{R: 255}, Wheel(0))
	assert.Equal(t, ws2812.RGB{R: 252, G: 3}, Wheel(1))
	assert.Equal(t, ws2812.RGB{G: 255}, Wheel(85))
	assert.Equal(t, ws2812.RGB{B: 255}, Wheel(170))
	assert.Equal(t, ws2812.RGB{R: 255}, Wheel(255))
}

func TestSolid(t *testing.T) {
	c := ws2812.RGB{R: 1}
	assert.Equal(t, []ws2812.RGB{c, c, c}, slices.Collect(Solid(c, 3)))
	assert.Empty(t, slices.Collect(Solid(c, 0)))

	// Stops early when the consumer does.
	n := 0
	for range Solid(c, 10) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestDim(t *testing.T) {
	colors := slices.Values([]ws2812.RGB{{R: 200}, {G: 100, B: 50}})
	assert.Equal(t, []ws2812.RGB{{R: 100}, {G: 50, B: 25}}, slices.Collect(Dim(colors, 50)))
}
