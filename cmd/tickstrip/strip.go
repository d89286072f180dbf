package main

import (
	"iter"

	"github.com/callebjorkell/tickstrip/internal/hw"
	"github.com/callebjorkell/tickstrip/internal/pattern"
	"github.com/callebjorkell/tickstrip/internal/ws2812"
	log "github.com/sirupsen/logrus"
)

type strip interface {
	pattern.Writer
	Close() error
}

// bitbang drives the strip with the tick based driver.
type bitbang struct {
	drv        *ws2812.Driver[*hw.Clock, *hw.Pin]
	pin        *hw.Pin
	brightness uint32
}

func (b *bitbang) Write(colors iter.Seq[ws2812.RGB]) error {
	return b.drv.Write(pattern.Dim(colors, b.brightness))
}

func (b *bitbang) Close() error {
	return b.pin.Halt()
}

func openStrip(conf *Config) (strip, error) {
	if conf.Engine == engineDMA {
		n, err := conf.GpioNumber()
		if err != nil {
			return nil, err
		}
		s, err := hw.OpenDMA(n, conf.Leds, conf.Brightness*255/100)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	pin, err := hw.OpenPin(conf.Pin)
	if err != nil {
		return nil, err
	}
	clock := hw.NewClock(hw.TickRate)
	log.Debugf("Bit-banging %s with the %s profile, tick period %v", pin, ws2812.Profile, clock.Period())
	return &bitbang{
		drv:        ws2812.New(clock, pin),
		pin:        pin,
		brightness: uint32(conf.Brightness),
	}, nil
}
