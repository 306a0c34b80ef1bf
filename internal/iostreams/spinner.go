package iostreams

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// spinnerFrames is the braille animation: ⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerFrame returns the rendered frame for a tick and label.
// Pure function, used by the spinner goroutine.
func SpinnerFrame(tick int, label string, cs *ColorScheme) string {
	frame := cs.Cyan(spinnerFrames[tick%len(spinnerFrames)])
	if label == "" {
		return frame
	}
	return frame + " " + label
}

// spinnerRunner manages an animated spinner goroutine.
type spinnerRunner struct {
	label    string
	cs       *ColorScheme
	writer   io.Writer
	done     chan struct{}
	stopped  chan struct{} // closed when goroutine exits
	tick     int
	mu       sync.Mutex
	stopOnce sync.Once
}

func newSpinnerRunner(label string, cs *ColorScheme, writer io.Writer) *spinnerRunner {
	return &spinnerRunner{
		label:   label,
		cs:      cs,
		writer:  writer,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins the spinner animation in a background goroutine.
func (r *spinnerRunner) Start() {
	go func() {
		defer close(r.stopped)
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-r.done:
				return
			case <-ticker.C:
				r.mu.Lock()
				frame := SpinnerFrame(r.tick, r.label, r.cs)
				r.tick++
				r.mu.Unlock()

				// Exit on write error (closed pipe) to avoid a hot loop.
				if _, err := fmt.Fprintf(r.writer, "\r\033[K%s", frame); err != nil {
					return
				}
			}
		}
	}()
}

// Stop halts the animation and clears the line. Safe to call multiple times.
func (r *spinnerRunner) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
		<-r.stopped
		fmt.Fprint(r.writer, "\r\033[K")
	})
}

// SetLabel updates the spinner label while it's running.
func (r *spinnerRunner) SetLabel(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.label = label
}

// StartSpinner starts an animated spinner on stderr.
// Calling it again while a spinner is running only updates the label.
// Does nothing if progress indicators are disabled (non-TTY environment).
func (s *IOStreams) StartSpinner(label string) {
	if !s.progressIndicatorEnabled {
		return
	}

	s.spinnerMu.Lock()
	defer s.spinnerMu.Unlock()

	if s.spinnerDisabled {
		s.startTextualSpinnerLocked(label)
		return
	}

	if s.activeSpinner != nil {
		s.activeSpinner.SetLabel(label)
		return
	}

	sp := newSpinnerRunner(label, s.ColorScheme(), s.ErrOut)
	sp.Start()
	s.activeSpinner = sp
}

// startTextualSpinnerLocked prints the label once instead of animating.
// Caller must hold spinnerMu.
func (s *IOStreams) startTextualSpinnerLocked(label string) {
	if label == "" {
		label = "Working..."
	}
	if !strings.HasSuffix(label, "...") {
		label += "..."
	}
	fmt.Fprintln(s.ErrOut, s.ColorScheme().Cyan(label))
}

// StopSpinner stops the active spinner and clears the line.
// Safe to call even if no spinner is running.
func (s *IOStreams) StopSpinner() {
	s.spinnerMu.Lock()
	defer s.spinnerMu.Unlock()

	if s.activeSpinner == nil {
		return
	}

	s.activeSpinner.Stop()
	s.activeSpinner = nil
}

// RunWithSpinner runs fn while showing a spinner, then reports the outcome
// with a success or failure line. The error from fn is returned unchanged.
func (s *IOStreams) RunWithSpinner(label, success, failure string, fn func() error) error {
	s.StartSpinner(label)
	err := fn()
	s.StopSpinner()

	if err != nil {
		_ = s.PrintFailure("%s", failure)
		return err
	}
	_ = s.PrintSuccess("%s", success)
	return nil
}
