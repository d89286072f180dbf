package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	engineBitbang = "bitbang"
	engineDMA     = "dma"

	defaultPin        = "GPIO18"
	defaultButton     = "GPIO20"
	defaultLeds       = 24
	defaultBrightness = 100
)

type Config struct {
	Pin        string `yaml:"pin"`
	Button     string `yaml:"button"`
	Leds       int    `yaml:"leds"`
	Engine     string `yaml:"engine"`
	Brightness int    `yaml:"brightness"`
}

// GpioNumber is the BCM number of the data pin, as the DMA engine wants it.
func (c Config) GpioNumber() (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(c.Pin, "GPIO"))
	if err != nil {
		return 0, fmt.Errorf("pin %q is not a GPIO number", c.Pin)
	}
	return n, nil
}

func readConfig(name string) (*Config, error) {
	content, err := os.ReadFile(name)
	if os.IsNotExist(err) {
		log.Warnf("No configuration at %s, using defaults", name)
		return parseConfig(nil)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read configuration")
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	if c.Pin == "" {
		c.Pin = defaultPin
	}
	if c.Button == "" {
		c.Button = defaultButton
	}
	if c.Engine == "" {
		c.Engine = engineBitbang
	}
	if c.Leds == 0 {
		c.Leds = defaultLeds
	}
	if c.Brightness == 0 {
		c.Brightness = defaultBrightness
	}

	if c.Engine != engineBitbang && c.Engine != engineDMA {
		return nil, fmt.Errorf("unknown engine %q", c.Engine)
	}
	if c.Leds < 0 {
		return nil, fmt.Errorf("led count must be positive, got %d", c.Leds)
	}
	if c.Brightness < 0 || c.Brightness > 100 {
		return nil, fmt.Errorf("brightness must be between 1 and 100, got %d", c.Brightness)
	}
	if c.Engine == engineDMA {
		if _, err := c.GpioNumber(); err != nil {
			return nil, err
		}
	}

	return c, nil
}
