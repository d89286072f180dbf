package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
)

// parseColor reads RRGGBB, optionally prefixed with # or 0x.
func parseColor(s string) (ws2812.RGB, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(h) != 6 {
		return ws2812.RGB{}, fmt.Errorf("color %q is not in RRGGBB form", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return ws2812.RGB{}, fmt.Errorf("color %q is not hexadecimal", s)
	}
	return ws2812.FromHex(uint32(v)), nil
}

func parseColors(args []string) ([]ws2812.RGB, error) {
	colors := make([]ws2812.RGB, 0, len(args))
	for _, a := range args {
		c, err := parseColor(a)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
