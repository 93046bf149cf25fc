package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ClearScreen clears the terminal screen and moves cursor to top-left
func ClearScreen(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[2J\033[H")
}

// HideCursor hides the terminal cursor
func HideCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor
func ShowCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25h")
}

// SignalContext returns a context cancelled on interrupt or SIGTERM
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Watch redraws the screen every interval until ctx is done. A failing
// render is reported on errw and the loop keeps going.
func Watch(ctx context.Context, w, errw io.Writer, interval time.Duration, render func(context.Context) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Hide cursor during watch mode
	HideCursor(w)
	defer ShowCursor(w)

	for {
		ClearScreen(w)
		_, _ = fmt.Fprintf(w, "Last update: %s | Next refresh in %s | Press Ctrl+C to exit\n\n",
			time.Now().Format("15:04:05"), interval)

		if err := render(ctx); err != nil {
			_, _ = fmt.Fprintf(errw, "Error: %v\n", err)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			ClearScreen(w)
			_, _ = fmt.Fprintln(w, "Watch mode ended.")
			return nil
		}
	}
}
