package main

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/callebjorkell/tickstrip/internal/ws2812"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanWriter struct {
	first chan ws2812.RGB
}

func (w *chanWriter) Write(colors iter.Seq[ws2812.RGB]) error {
	for c := range colors {
		w.first <- c
		break
	}
	return nil
}

func next(t *testing.T, w *chanWriter) ws2812.RGB {
	t.Helper()
	select {
	case c := <-w.first:
		return c
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a write")
	}
	return ws2812.RGB{}
}

func TestCycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := &chanWriter{first: make(chan ws2812.RGB, 100)}
	presses := make(chan struct{})
	red := ws2812.RGB{R: 0xff}

	done := make(chan error, 1)
	go func() {
		done <- cycle(ctx, w, "clear", red, 1, presses)
	}()

	assert.Equal(t, ws2812.RGB{}, next(t, w))

	// clear wraps around to static.
	presses <- struct{}{}
	assert.Equal(t, red, next(t, w))

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cycle did not stop")
	}
}

func TestCycle_UnknownName(t *testing.T) {
	err := cycle(context.Background(), &chanWriter{}, "disco", ws2812.RGB{}, 1, nil)
	assert.Error(t, err)
}

func TestTraceWrite(t *testing.T) {
	require.NoError(t, traceWrite([]string{"ff0080", "00ff00"}, true))
	require.NoError(t, traceWrite(nil, false))
	assert.Error(t, traceWrite([]string{"red"}, false))
}
