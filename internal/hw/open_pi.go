//go:build pi

package hw

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// OpenPin initialises periph and looks up the named GPIO.
func OpenPin(name string) (*Pin, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize periph")
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, errors.Errorf("no such pin %q", name)
	}
	log.Infof("Using %s for LED data", p)
	return NewPin(p), nil
}
