package pattern

import (
	"context"
	"errors"
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	frames [][]ws2812.RGB
	err    error
	after  func()
}

func (w *recordingWriter) Write(colors iter.Seq[ws2812.RGB]) error {
	w.frames = append(w.frames, slices.Collect(colors))
	if w.after != nil {
		w.after()
	}
	return w.err
}

func TestAnimations(t *testing.T) {
	c := ws2812.RGB{R: 0xff, G: 0x80}

	tt := []struct {
		name     string
		a        Animation
		frames   int
		duration time.Duration
	}{
		{"clear", Clear(4), 1, 0},
		{"static", Static(c, 4), 1, time.Second},
		{"flash", Flash(c, 4), 6, 530 * time.Millisecond},
		{"breathe", Breathe(c, 4), 202, 2020 * time.Millisecond},
		{"rainbow", Rainbow(4), 451, 451 * 30 * time.Millisecond},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, tc.a, tc.frames)
			assert.Equal(t, tc.duration, tc.a.Duration())
			for _, f := range tc.a {
				assert.Len(t, f.Colors, 4)
			}
		})
	}
}

func TestBreathe_PeaksAtFullColor(t *testing.T) {
	c := ws2812.RGB{R: 0xff, G: 0x80, B: 0x40}
	a := Breathe(c, 1)

	assert.Equal(t, ws2812.RGB{}, a[0].Colors[0])
	assert.Equal(t, c, a[100].Colors[0])
	assert.Equal(t, c, a[101].Colors[0])
	assert.Equal(t, ws2812.RGB{}, a[len(a)-1].Colors[0])
}

func TestRainbow_FadesInAndOut(t *testing.T) {
	a := Rainbow(3)
	assert.Equal(t, []ws2812.RGB{{}, {}, {}}, a[0].Colors)
	assert.Equal(t, []ws2812.RGB{{}, {}, {}}, a[450].Colors)
	assert.NotEqual(t, []ws2812.RGB{{}, {}, {}}, a[200].Colors)
}

func TestByName(t *testing.T) {
	for _, name := range Names {
		a, err := ByName(name, ws2812.RGB{B: 1}, 2)
		assert.NoError(t, err, name)
		assert.NotEmpty(t, a, name)
	}

	_, err := ByName("disco", ws2812.RGB{}, 2)
	assert.Error(t, err)
}

func TestPlay(t *testing.T) {
	a := Animation{
		{Colors: []ws2812.RGB{{R: 1}}, Hold: time.Millisecond},
		{Colors: []ws2812.RGB{{G: 1}}},
		{Colors: []ws2812.RGB{{B: 1}}, Hold: time.Millisecond},
	}
	w := &recordingWriter{}

	err := Play(context.Background(), w, a)
	require.NoError(t, err)
	assert.Equal(t, [][]ws2812.RGB{{{R: 1}}, {{G: 1}}, {{B: 1}}}, w.frames)
}

func TestPlay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &recordingWriter{after: cancel}

	err := Play(ctx, w, Flash(ws2812.RGB{R: 1}, 1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, w.frames, 1)
}

func TestPlay_WriteError(t *testing.T) {
	boom := errors.New("boom")
	w := &recordingWriter{err: boom}

	err := Play(context.Background(), w, Clear(1))
	assert.ErrorIs(t, err, boom)
}

func TestLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &recordingWriter{}
	w.after = func() {
		if len(w.frames) == 5 {
			cancel()
		}
	}
	a := Animation{
		{Colors: []ws2812.RGB{{R: 1}}, Hold: time.Millisecond},
		{Colors: []ws2812.RGB{{R: 2}}, Hold: time.Millisecond},
	}

	err := Loop(ctx, w, a)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, w.frames, 5)
}

func TestLoop_NeedsDuration(t *testing.T) {
	assert.Error(t, Loop(context.Background(), &recordingWriter{}, Clear(1)))
}
