// Package trace records what a Driver does to its pin against a virtual clock,
// and decodes the recording back into colours.
package trace

import (
	"periph.io/x/conn/v3/gpio"
)

// Edge is a single pin command issued at a virtual tick.
type Edge struct {
	Tick  uint64
	Level gpio.Level
}

// Capture is a virtual timer and pin sharing one clock. Time only advances
// when the driver observes a tick.
type Capture struct {
	// Stall is the number of polls answered with "not yet" before each tick.
	Stall int

	now     uint64
	polls   int
	stalled int
	pinErr  error
	edges   []Edge
}

func NewCapture() *Capture {
	return &Capture{}
}

// Ticker returns the timer side of the capture.
func (c *Capture) Ticker() *Ticker {
	return (*Ticker)(c)
}

// Pin returns the output side of the capture.
func (c *Capture) Pin() *Pin {
	return (*Pin)(c)
}

// FailWith makes every following pin command return err. Commands are still
// recorded.
func (c *Capture) FailWith(err error) {
	c.pinErr = err
}

// Now is the number of ticks observed so far.
func (c *Capture) Now() uint64 {
	return c.now
}

// Polls is the number of times the timer was asked for a tick.
func (c *Capture) Polls() int {
	return c.polls
}

// Edges returns the recorded pin commands in order.
func (c *Capture) Edges() []Edge {
	return c.edges
}

// Reset clears the recording and rewinds the clock.
func (c *Capture) Reset() {
	c.now, c.polls, c.stalled = 0, 0, 0
	c.edges = c.edges[:0]
}

// Decode decodes everything recorded so far.
func (c *Capture) Decode() (Report, error) {
	return Decode(c.edges, c.now)
}

func (c *Capture) record(l gpio.Level) error {
	c.edges = append(c.edges, Edge{Tick: c.now, Level: l})
	return c.pinErr
}

// Ticker implements ws2812.TickSource.
type Ticker Capture

func (t *Ticker) Tick() bool {
	c := (*Capture)(t)
	c.polls++
	if c.stalled < c.Stall {
		c.stalled++
		return false
	}
	c.stalled = 0
	c.now++
	return true
}

// Pin implements ws2812.OutputPin.
type Pin Capture

func (p *Pin) High() error {
	return (*Capture)(p).record(gpio.High)
}

func (p *Pin) Low() error {
	return (*Capture)(p).record(gpio.Low)
}
