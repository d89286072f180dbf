package hw

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
)

// Pin adapts a periph output pin to ws2812.OutputPin.
type Pin struct {
	p gpio.PinOut
}

func NewPin(p gpio.PinOut) *Pin {
	return &Pin{p: p}
}

func (p *Pin) High() error {
	return p.p.Out(gpio.High)
}

func (p *Pin) Low() error {
	return p.p.Out(gpio.Low)
}

func (p *Pin) String() string {
	return p.p.String()
}

// Halt stops the pin and leaves it in whatever state the platform chooses.
func (p *Pin) Halt() error {
	return errors.Wrapf(p.p.Halt(), "failed to halt %s", p.p.Name())
}
