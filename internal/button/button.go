//go:build pi

package button

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Listen watches the named pin until ctx is done. The button pulls the pin low.
func Listen(ctx context.Context, name string) (<-chan Event, error) {
	log.Infof("Initializing button handler on %s", name)
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize periph")
	}
	b := gpioreg.ByName(name)
	if b == nil {
		return nil, errors.Errorf("no such pin %q", name)
	}
	if err := b.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return nil, errors.Wrapf(err, "failed to configure %s", name)
	}

	c := make(chan Event, 5)
	go handleButton(ctx, b, c)
	return c, nil
}

func handleButton(ctx context.Context, b gpio.PinIO, c chan<- Event) {
	defer close(c)

	last := b.Read()
	for ctx.Err() == nil {
		if !b.WaitForEdge(time.Second) {
			continue
		}

		// debounce
		l := b.Read()
		if l == last {
			continue
		}
		time.Sleep(15 * time.Millisecond)
		if l != b.Read() {
			continue
		}

		last = l
		select {
		case c <- Event{Pressed: l == gpio.Low}:
		case <-ctx.Done():
		}
	}
}
