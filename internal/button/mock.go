//go:build !pi

package button

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// Listen simulates the button: every SIGHUP is a press.
func Listen(ctx context.Context, name string) (<-chan Event, error) {
	log.Infof("Simulating button %s, send SIGHUP to press", name)

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	c := make(chan Event, 5)
	go func() {
		defer close(c)
		defer signal.Stop(hup)
		simulate(ctx, hup, c)
	}()
	return c, nil
}

func simulate(ctx context.Context, in <-chan os.Signal, c chan<- Event) {
	for {
		select {
		case <-in:
			select {
			case c <- Event{Pressed: true}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
