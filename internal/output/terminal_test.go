package output

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mobil-koeln/treni-cli/internal/testutil"
)

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	ClearScreen(&buf)

	testutil.AssertContains(t, buf.String(), "\033[2J")
	testutil.AssertContains(t, buf.String(), "\033[H")
}

func TestHideCursor(t *testing.T) {
	var buf bytes.Buffer
	HideCursor(&buf)
	testutil.AssertContains(t, buf.String(), "\033[?25l")
}

func TestShowCursor(t *testing.T) {
	var buf bytes.Buffer
	ShowCursor(&buf)
	testutil.AssertContains(t, buf.String(), "\033[?25h")
}

func TestSignalContext(t *testing.T) {
	ctx, stop := SignalContext(context.Background())
	testutil.AssertNil(t, ctx.Err())

	stop()
	select {
	case <-ctx.Done():
	case <-time.After(100 * time.Millisecond):
		t.Error("context should be done after stop")
	}
}

func TestWatch_RendersUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out, errOut bytes.Buffer
	renders := 0
	err := Watch(ctx, &out, &errOut, time.Millisecond, func(context.Context) error {
		renders++
		if renders == 2 {
			return errors.New("upstream down")
		}
		if renders >= 3 {
			cancel()
		}
		return nil
	})

	testutil.AssertNil(t, err)
	// A tick may race the cancellation once
	testutil.AssertTrue(t, renders >= 3)
	testutil.AssertContains(t, out.String(), "Last update:")
	testutil.AssertContains(t, out.String(), "Watch mode ended.")
	testutil.AssertEqual(t, strings.Count(errOut.String(), "Error: upstream down"), 1)

	// Cursor is restored on exit
	testutil.AssertTrue(t, strings.HasSuffix(out.String(), "\033[?25h"))
}
