// Package hw binds the ws2812 driver to real hardware: periph.io pins, a
// software tick source and, on the Raspberry Pi, the rpi-ws281x DMA engine.
package hw

import (
	"time"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
	"periph.io/x/conn/v3/physic"
)

// TickRate is the frequency the driver's timing tables expect.
const TickRate = ws2812.TickHz * physic.Hertz

// Clock is a ws2812.TickSource driven by the monotonic clock. Like a timer's
// update flag, any number of missed periods is reported as a single tick.
//
// The caller has to keep the goroutine on its own thread and out of the
// scheduler's way while writing; Clock cannot tell when it is late.
type Clock struct {
	period time.Duration
	next   time.Duration
	now    func() time.Duration
}

// NewClock starts a clock ticking at f.
func NewClock(f physic.Frequency) *Clock {
	start := time.Now()
	return newClock(f.Period(), func() time.Duration {
		return time.Since(start)
	})
}

func newClock(period time.Duration, now func() time.Duration) *Clock {
	return &Clock{
		period: period,
		next:   now() + period,
		now:    now,
	}
}

// Period is the time between two ticks.
func (c *Clock) Period() time.Duration {
	return c.period
}

// Tick implements ws2812.TickSource.
func (c *Clock) Tick() bool {
	now := c.now()
	if now < c.next {
		return false
	}
	for c.next <= now {
		c.next += c.period
	}
	return true
}
