package main

import (
	"testing"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tt := []struct {
		input  string
		output ws2812.RGB
	}{
		{"ff0080", ws2812.RGB{R: 0xff, B: 0x80}},
		{"#00FF00", ws2812.RGB{G: 0xff}},
		{"0x123456", ws2812.RGB{R: 0x12, G: 0x34, B: 0x56}},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			c, err := parseColor(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.output, c)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, s := range []string{"", "fff", "ff00ff00", "gg0000", "#-12345"} {
		_, err := parseColor(s)
		assert.Error(t, err, s)
	}
}

func TestParseColors(t *testing.T) {
	colors, err := parseColors([]string{"ff0000", "00ff00"})
	require.NoError(t, err)
	assert.Equal(t, []ws2812.RGB{{R: 0xff}, {G: 0xff}}, colors)

	_, err = parseColors([]string{"ff0000", "nope"})
	assert.Error(t, err)
}
