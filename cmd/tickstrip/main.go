package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"

	"github.com/callebjorkell/tickstrip/internal/button"
	"github.com/callebjorkell/tickstrip/internal/pattern"
	"github.com/callebjorkell/tickstrip/internal/trace"
	"github.com/callebjorkell/tickstrip/internal/ws2812"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("tickstrip", "Drive WS2812 LED strips from a 3MHz tick source.")
	debug      = app.Flag("debug", "Turn on debug logging.").Bool()
	configFile = app.Flag("config", "Configuration file.").Default("tickstrip.yaml").String()

	write       = app.Command("write", "Write colors to the strip once.")
	writeColors = write.Arg("colors", "Colors as RRGGBB.").Required().Strings()

	animate      = app.Command("animate", "Loop an animation. Button presses switch to the next one.")
	animateName  = animate.Arg("name", "Animation to start with.").Default("rainbow").Enum(pattern.Names...)
	animateColor = animate.Flag("color", "Color for single color animations.").Default("ff8000").String()

	traceCmd    = app.Command("trace", "Encode colors on a virtual pin and decode the result.")
	traceColors = traceCmd.Arg("colors", "Colors as RRGGBB.").Strings()
	traceBits   = traceCmd.Flag("bits", "Print the decoded bit stream.").Bool()

	version = app.Command("version", "Show current version.")
)

var buildTime, buildVersion string

func showVersion() {
	if buildTime != "" && buildVersion != "" {
		fmt.Printf("%s (built: %s, %s timing)\n", buildVersion, buildTime, ws2812.Profile)
	} else {
		fmt.Printf("tickstrip: dev (%s timing)\n", ws2812.Profile)
	}
}

func main() {
	cmd, err := app.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("%v: Try --help\n", err.Error())
		os.Exit(1)
	}

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if *debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	switch cmd {
	case write.FullCommand():
		err = writeOnce(*writeColors)
	case animate.FullCommand():
		err = startAnimation(*animateName, *animateColor)
	case traceCmd.FullCommand():
		err = traceWrite(*traceColors, *traceBits)
	case version.FullCommand():
		showVersion()
	default:
		kingpin.FatalUsage("Unrecognized command")
	}
	if err != nil {
		log.Fatal(err)
	}
}

func writeOnce(args []string) error {
	colors, err := parseColors(args)
	if err != nil {
		return err
	}
	conf, err := readConfig(*configFile)
	if err != nil {
		return err
	}
	s, err := openStrip(conf)
	if err != nil {
		return err
	}
	defer s.Close()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	log.Infof("Writing %d colors", len(colors))
	return s.Write(slices.Values(colors))
}

func traceWrite(args []string, bits bool) error {
	colors, err := parseColors(args)
	if err != nil {
		return err
	}

	c := trace.NewCapture()
	d := ws2812.New(c.Ticker(), c.Pin())
	if err := d.WriteSlice(colors); err != nil {
		return err
	}

	r, err := c.Decode()
	if err != nil {
		return errors.Wrap(err, "failed to decode the recorded signal")
	}
	fmt.Printf("profile: %s, ticks: %d (%v)\n", ws2812.Profile, c.Now(), trace.Duration(c.Now()))
	fmt.Print(r)
	if bits {
		fmt.Println(r.Bits())
	}
	return nil
}

func startAnimation(name, color string) error {
	c, err := parseColor(color)
	if err != nil {
		return err
	}
	conf, err := readConfig(*configFile)
	if err != nil {
		return err
	}
	s, err := openStrip(conf)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	events, err := button.Listen(ctx, conf.Button)
	if err != nil {
		return err
	}

	presses := make(chan struct{})
	g.Go(func() error {
		for e := range events {
			log.Infof("Event: %v", e)
			if e.Pressed {
				// non-blocking. A press during a switch is dropped.
				select {
				case presses <- struct{}{}:
				default:
				}
			}
		}
		return nil
	})
	g.Go(func() error {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		return cycle(ctx, s, name, c, conf.Leds, presses)
	})

	err = g.Wait()
	log.Info("Clearing strip...")
	if cerr := s.Write(pattern.Solid(ws2812.RGB{}, conf.Leds)); cerr != nil {
		log.Warn("Unable to clear strip: ", cerr)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// cycle plays animations, moving to the next one in pattern.Names on every
// press, until ctx is done.
func cycle(ctx context.Context, w pattern.Writer, name string, c ws2812.RGB, n int, presses <-chan struct{}) error {
	i := slices.Index(pattern.Names, name)
	if i < 0 {
		return fmt.Errorf("unknown animation %q", name)
	}

	for {
		a, err := pattern.ByName(pattern.Names[i], c, n)
		if err != nil {
			return err
		}
		log.Infof("Starting %s", pattern.Names[i])

		playCtx, stop := context.WithCancel(ctx)
		go func() {
			select {
			case <-presses:
				stop()
			case <-playCtx.Done():
			}
		}()

		err = play(playCtx, w, a)
		stop()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		i = (i + 1) % len(pattern.Names)
	}
}

func play(ctx context.Context, w pattern.Writer, a pattern.Animation) error {
	if a.Duration() > 0 {
		return pattern.Loop(ctx, w, a)
	}
	if err := pattern.Play(ctx, w, a); err != nil {
		return err
	}
	<-ctx.Done()
	return ctx.Err()
}
