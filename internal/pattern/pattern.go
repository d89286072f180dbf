// Package pattern generates colour sequences and timed animations for a strip.
package pattern

import (
	"iter"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
)

// Solid yields the same colour n times.
func Solid(c ws2812.RGB, n int) iter.Seq[ws2812.RGB] {
	return func(yield func(ws2812.RGB) bool) {
		for range n {
			if !yield(c) {
				return
			}
		}
	}
}

// Wheel maps 0-255 onto a red, green, blue colour wheel.
func Wheel(pos uint8) ws2812.RGB {
	pos = 255 - pos
	switch {
	case pos < 85:
		return ws2812.RGB{R: 255 - pos*3, B: pos * 3}
	case pos < 170:
		pos -= 85
		return ws2812.RGB{G: pos * 3, B: 255 - pos*3}
	default:
		pos -= 170
		return ws2812.RGB{R: pos * 3, G: 255 - pos*3}
	}
}

// WithBrightness returns the same colour with a lower or equal brightness, on
// a scale from 0-100 where 100 leaves the colour unchanged.
func WithBrightness(c ws2812.RGB, light uint32) ws2812.RGB {
	if light >= 100 {
		return c
	}
	if light == 0 {
		return ws2812.RGB{}
	}
	return ws2812.RGB{
		R: uint8(uint32(c.R) * light / 100),
		G: uint8(uint32(c.G) * light / 100),
		B: uint8(uint32(c.B) * light / 100),
	}
}

// Dim scales every colour of a sequence with WithBrightness.
func Dim(colors iter.Seq[ws2812.RGB], light uint32) iter.Seq[ws2812.RGB] {
	return func(yield func(ws2812.RGB) bool) {
		for c := range colors {
			if !yield(WithBrightness(c, light)) {
				return
			}
		}
	}
}
