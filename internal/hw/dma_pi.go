//go:build pi

package hw

import (
	"iter"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
	"github.com/pkg/errors"
	ws "github.com/rpi-ws281x/rpi-ws281x-go"
	log "github.com/sirupsen/logrus"
)

// DMAStrip writes colours through the rpi-ws281x PWM/DMA engine instead of
// bit-banging. Useful to tell a wiring problem from a timing problem.
type DMAStrip struct {
	dev *ws.WS2811
}

// OpenDMA opens a strip of count LEDs on the given BCM GPIO number.
func OpenDMA(gpioNum, count, brightness int) (*DMAStrip, error) {
	opt := ws.DefaultOptions
	opt.Channels[0].GpioPin = gpioNum
	opt.Channels[0].LedCount = count
	opt.Channels[0].Brightness = brightness

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ws281x device")
	}
	if err := dev.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize ws281x device")
	}
	log.Infof("Using ws281x DMA engine on GPIO%d for %d LEDs", gpioNum, count)
	return &DMAStrip{dev: dev}, nil
}

// Write renders the colours; LEDs past the end of the sequence are cleared.
func (s *DMAStrip) Write(colors iter.Seq[ws2812.RGB]) error {
	leds := s.dev.Leds(0)
	i := 0
	for c := range colors {
		if i == len(leds) {
			break
		}
		leds[i] = c.Hex()
		i++
	}
	clear(leds[i:])
	if err := s.dev.Render(); err != nil {
		return errors.Wrap(err, "failed to render")
	}
	return errors.Wrap(s.dev.Wait(), "failed waiting for render")
}

func (s *DMAStrip) Close() error {
	s.dev.Fini()
	return nil
}
