package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/swapguard/internal/usecase"
)

// SpinnerSink shows step progress on a terminal spinner and prints a
// line per finished step
type SpinnerSink struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *spinner.Spinner
	current *stepInfo
}

type stepInfo struct {
	stage     string
	message   string
	index     int
	total     int
	startTime time.Time
}

// NewSpinnerSink creates a spinner sink writing to stderr
func NewSpinnerSink() *SpinnerSink {
	return NewSpinnerSinkWithWriter(os.Stderr)
}

// NewSpinnerSinkWithWriter creates a spinner sink writing to out
func NewSpinnerSinkWithWriter(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{out: out, spinner: s}
}

// OnProgress closes the previous step and starts the spinner on the new one
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil && r.current.stage != event.Stage {
		r.finishCurrent(color.New(color.FgGreen).Sprint("✓"))
	}

	if event.Total > 0 && event.Current == event.Total && !event.Spinner && r.current == nil {
		// final event of a run
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		return
	}

	r.current = &stepInfo{
		stage:     event.Stage,
		message:   event.Message,
		index:     event.Current,
		total:     event.Total,
		startTime: time.Now(),
	}
	r.spinner.Suffix = " " + r.label(r.current)
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Info prints an info message above the spinner
func (r *SpinnerSink) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

// Error marks the running step as failed and prints the message
func (r *SpinnerSink) Error(message string) {
	r.mu.Lock()
	if r.current != nil {
		r.finishCurrent(color.New(color.FgRed).Sprint("✗"))
	}
	r.mu.Unlock()
	r.print(color.New(color.FgRed), message)
}

// Stop ends the spinner and closes the running step
func (r *SpinnerSink) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		r.finishCurrent(color.New(color.FgGreen).Sprint("✓"))
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// finishCurrent prints the finished step; callers hold the lock
func (r *SpinnerSink) finishCurrent(icon string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	duration := time.Since(r.current.startTime).Round(time.Millisecond)
	fmt.Fprintf(r.out, "%s %s %s\n", icon, r.label(r.current), color.New(color.Faint).Sprintf("(%s)", duration))
	r.current = nil
}

func (r *SpinnerSink) label(step *stepInfo) string {
	if step.total > 0 {
		return fmt.Sprintf("[%d/%d] %s", step.index, step.total, step.message)
	}
	return step.message
}

func (r *SpinnerSink) print(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Stop spinner temporarily
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	// Restart spinner if it was active
	if wasActive {
		r.spinner.Start()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
