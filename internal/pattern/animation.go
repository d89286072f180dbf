package pattern

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Writer is anything that can put a colour sequence on a strip.
type Writer interface {
	Write(colors iter.Seq[ws2812.RGB]) error
}

// Frame is a set of colours shown for Hold.
type Frame struct {
	Colors []ws2812.RGB
	Hold   time.Duration
}

// Animation is a sequence of frames.
type Animation []Frame

// Duration is the total hold time of all frames.
func (a Animation) Duration() time.Duration {
	var d time.Duration
	for _, f := range a {
		d += f.Hold
	}
	return d
}

func frame(c ws2812.RGB, n int, hold time.Duration) Frame {
	return Frame{Colors: slices.Collect(Solid(c, n)), Hold: hold}
}

// Clear is a single frame of n dark LEDs.
func Clear(n int) Animation {
	return Animation{frame(ws2812.RGB{}, n, 0)}
}

// Static shows a single colour on n LEDs.
func Static(c ws2812.RGB, n int) Animation {
	return Animation{frame(c, n, time.Second)}
}

// Flash blinks c three times.
func Flash(c ws2812.RGB, n int) Animation {
	return Animation{
		frame(c, n, 250*time.Millisecond),
		frame(ws2812.RGB{}, n, 40*time.Millisecond),
		frame(c, n, 100*time.Millisecond),
		frame(ws2812.RGB{}, n, 40*time.Millisecond),
		frame(c, n, 100*time.Millisecond),
		frame(ws2812.RGB{}, n, 0),
	}
}

// Breathe fades c in and out.
func Breathe(c ws2812.RGB, n int) Animation {
	a := make(Animation, 0, 202)
	for light := uint32(0); light <= 100; light++ {
		a = append(a, frame(WithBrightness(c, light), n, 10*time.Millisecond))
	}
	for light := uint32(100); ; light-- {
		a = append(a, frame(WithBrightness(c, light), n, 10*time.Millisecond))
		if light == 0 {
			break
		}
	}
	return a
}

// Rainbow scrolls the colour wheel along n LEDs, fading in at the start and
// out at the end.
func Rainbow(n int) Animation {
	a := make(Animation, 0, 451)
	for step := 0; step <= 450; step++ {
		light := uint32(100)
		if step < 50 {
			light = uint32(step * 2)
		}
		if step > 350 {
			light = uint32(450 - step)
		}

		f := Frame{Colors: make([]ws2812.RGB, n), Hold: 30 * time.Millisecond}
		for i := range f.Colors {
			pos := uint8((i*256/max(n, 1) + step) & 0xff)
			f.Colors[i] = WithBrightness(Wheel(pos), light)
		}
		a = append(a, f)
	}
	return a
}

// Names lists the animations known to ByName.
var Names = []string{"static", "flash", "breathe", "rainbow", "clear"}

// ByName builds one of the named animations.
func ByName(name string, c ws2812.RGB, n int) (Animation, error) {
	switch name {
	case "static":
		return Static(c, n), nil
	case "flash":
		return Flash(c, n), nil
	case "breathe":
		return Breathe(c, n), nil
	case "rainbow":
		return Rainbow(n), nil
	case "clear":
		return Clear(n), nil
	}
	return nil, fmt.Errorf("unknown animation %q", name)
}

// Play writes each frame and holds it. It stops between frames when ctx is
// done; a frame that has started is always written completely.
func Play(ctx context.Context, w Writer, a Animation) error {
	log.Debugf("Playing %d frames (%v)", len(a), a.Duration())

	t := time.NewTimer(0)
	defer t.Stop()
	<-t.C

	for i, f := range a {
		if err := ctx.Err(); err != nil {
			log.Debug("Animation interrupted.")
			return err
		}
		if err := w.Write(slices.Values(f.Colors)); err != nil {
			return errors.Wrapf(err, "failed to write frame %d", i)
		}
		if f.Hold <= 0 {
			continue
		}

		t.Reset(f.Hold)
		select {
		case <-t.C:
		case <-ctx.Done():
			log.Debug("Animation interrupted.")
			return ctx.Err()
		}
	}
	return nil
}

// Loop plays the animation until ctx is done or a write fails.
func Loop(ctx context.Context, w Writer, a Animation) error {
	if a.Duration() <= 0 {
		return errors.New("animation has no duration to loop over")
	}
	for {
		if err := Play(ctx, w, a); err != nil {
			return err
		}
	}
}
