// Package ws2812 streams colours to WS2812 (NeoPixel) LED strips by toggling a
// single output pin in step with a 3 MHz periodic tick source.
//
// The tick source must already be running at 3 MHz. Nothing checks the rate;
// at any other frequency the pulse widths drift out of the strip's tolerance
// and colours come out wrong. If the strip shows white or wrong colours, try a
// build with the slow timing profile (-tags slow).
package ws2812

import (
	"errors"
	"image/color"
	"iter"
	"slices"
)

// TickHz is the tick rate the timing tables are written for.
const TickHz = 3_000_000

// ResetTicks is the idle low time appended after every write. The datasheet
// wants more than 50us; at 333ns per tick this is about 53.3us.
const ResetTicks = 3*50 + 10

// ErrWrite is never returned. Pin failures during a write are dropped.
var ErrWrite = errors.New("ws2812: write failed")

// TickSource is a free running periodic timer.
type TickSource interface {
	// Tick reports whether a period elapsed since the last call that returned
	// true. It must not block.
	Tick() bool
}

// OutputPin is a digital output. Both calls are best effort: the Driver ignores
// the returned errors and never retries. Implementations must not block, log
// or retry either.
type OutputPin interface {
	High() error
	Low() error
}

// Driver owns a tick source and a pin for its whole lifetime.
type Driver[T TickSource, P OutputPin] struct {
	ticks T
	pin   P
}

// New takes a running tick source and an output pin and drives the pin low.
func New[T TickSource, P OutputPin](ticks T, pin P) *Driver[T, P] {
	d := &Driver[T, P]{ticks: ticks, pin: pin}
	d.low()
	return d
}

// Write sends every colour of the sequence to the strip and then holds the
// line low for the reset gap. It blocks until done and always returns nil.
func (d *Driver[T, P]) Write(colors iter.Seq[RGB]) error {
	for c := range colors {
		// Unknown time since the last period, so realign before the first bit.
		d.wait()
		d.writeByte(c.G)
		d.writeByte(c.R)
		d.writeByte(c.B)
	}
	for range ResetTicks {
		d.wait()
	}
	return nil
}

// WriteColors converts arbitrary colours with RGBModel and writes them.
func (d *Driver[T, P]) WriteColors(cs ...color.Color) error {
	return d.Write(func(yield func(RGB) bool) {
		for _, c := range cs {
			if !yield(RGBModel.Convert(c).(RGB)) {
				return
			}
		}
	})
}

// WriteSlice writes the colours of a slice.
func (d *Driver[T, P]) WriteSlice(colors []RGB) error {
	return d.Write(slices.Values(colors))
}

func (d *Driver[T, P]) writeByte(data byte) {
	for range 8 {
		d.writeBit(data&0x80 != 0)
		data <<= 1
	}
}

func (d *Driver[T, P]) wait() {
	for !d.ticks.Tick() {
	}
}

func (d *Driver[T, P]) high() {
	_ = d.pin.High()
}

func (d *Driver[T, P]) low() {
	_ = d.pin.Low()
}
