//go:build !pi

package hw

import (
	"errors"
	"iter"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
)

var errNoDMA = errors.New("the ws281x DMA engine needs a build with -tags pi")

// DMAStrip is only available on the Raspberry Pi.
type DMAStrip struct{}

func OpenDMA(gpioNum, count, brightness int) (*DMAStrip, error) {
	return nil, errNoDMA
}

func (s *DMAStrip) Write(colors iter.Seq[ws2812.RGB]) error {
	return errNoDMA
}

func (s *DMAStrip) Close() error {
	return nil
}
