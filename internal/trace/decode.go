package trace

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
	"periph.io/x/conn/v3/gpio"
)

// OneTicks is the shortest high time, in ticks, that reads as a 1 bit.
const OneTicks = 2

var errStuckHigh = errors.New("line left high at end of recording")

// Pulse is one high period of the line.
type Pulse struct {
	Start uint64
	Ticks uint64
}

// One reports whether the pulse encodes a 1 bit.
func (p Pulse) One() bool {
	return p.Ticks >= OneTicks
}

// Width is the range of high times seen for one bit value.
type Width struct {
	Min, Max uint64
}

func (w *Width) add(ticks uint64, first bool) {
	if first || ticks < w.Min {
		w.Min = ticks
	}
	if first || ticks > w.Max {
		w.Max = ticks
	}
}

// Report is the decoded content of a recording.
type Report struct {
	Colors []ws2812.RGB
	Pulses []Pulse
	Ones   Width
	Zeros  Width
	// Gap is the low time between the last falling edge and the end of the
	// recording.
	Gap uint64
}

// Decode turns pin commands into colours. end is the tick the recording
// stopped at.
func Decode(edges []Edge, end uint64) (Report, error) {
	var (
		r    Report
		high bool
		rise uint64
		fall uint64
	)
	for _, e := range edges {
		switch {
		case e.Level == gpio.High && !high:
			high, rise = true, e.Tick
		case e.Level == gpio.Low && high:
			high, fall = false, e.Tick
			r.Pulses = append(r.Pulses, Pulse{Start: rise, Ticks: e.Tick - rise})
		case e.Level == gpio.Low:
			fall = e.Tick
		}
	}
	if high {
		return r, errStuckHigh
	}
	r.Gap = end - fall

	if n := len(r.Pulses); n%24 != 0 {
		return r, fmt.Errorf("%d bits recorded, not a whole number of colours", n)
	}

	var ones, zeros int
	frame := make([]byte, 0, len(r.Pulses)/8)
	var b byte
	for i, p := range r.Pulses {
		b <<= 1
		if p.One() {
			b |= 1
			r.Ones.add(p.Ticks, ones == 0)
			ones++
		} else {
			r.Zeros.add(p.Ticks, zeros == 0)
			zeros++
		}
		if i%8 == 7 {
			frame = append(frame, b)
			b = 0
		}
	}
	for i := 0; i < len(frame); i += 3 {
		r.Colors = append(r.Colors, ws2812.RGB{G: frame[i], R: frame[i+1], B: frame[i+2]})
	}
	return r, nil
}

// Bits returns the decoded bit stream as a string of 0 and 1.
func (r Report) Bits() string {
	var sb strings.Builder
	for i, p := range r.Pulses {
		if i > 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
		if p.One() {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Duration converts ticks to wall time at the nominal tick rate.
func Duration(ticks uint64) time.Duration {
	return time.Duration(ticks) * time.Second / ws2812.TickHz
}

func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "colors: %d, bits: %d\n", len(r.Colors), len(r.Pulses))
	for i, c := range r.Colors {
		fmt.Fprintf(&sb, "  %3d: #%06x\n", i, c.Hex())
	}
	fmt.Fprintf(&sb, "T1H: %v - %v\n", Duration(r.Ones.Min), Duration(r.Ones.Max))
	fmt.Fprintf(&sb, "T0H: %v - %v\n", Duration(r.Zeros.Min), Duration(r.Zeros.Max))
	fmt.Fprintf(&sb, "reset: %v (%d ticks)\n", Duration(r.Gap), r.Gap)
	return sb.String()
}
