// Package processtest provides a recording process.Runner for tests.
package processtest

import (
	"context"
	"io"
	"sync"

	"github.com/schmitthub/tsinit/internal/process"
)

// Call is one recorded invocation.
type Call struct {
	Dir  string
	Argv []string
}

// Result scripts the outcome of a call.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// Recorder records every command instead of running it. Results are
// consumed in order; when exhausted, calls succeed with no output.
type Recorder struct {
	mu      sync.Mutex
	calls   []Call
	results []Result
}

// NewRecorder returns a Recorder that replays results in order.
func NewRecorder(results ...Result) *Recorder {
	return &Recorder{results: results}
}

// Run records cmd and replays the next scripted result.
func (r *Recorder) Run(_ context.Context, cmd process.Command) error {
	r.mu.Lock()
	r.calls = append(r.calls, Call{
		Dir:  cmd.Dir,
		Argv: append([]string{cmd.Name}, cmd.Args...),
	})
	var res Result
	if len(r.results) > 0 {
		res = r.results[0]
		r.results = r.results[1:]
	}
	r.mu.Unlock()

	writeTo(cmd.Stdout, res.Stdout)
	writeTo(cmd.Stderr, res.Stderr)
	return res.Err
}

func writeTo(w io.Writer, s string) {
	if w != nil && s != "" {
		_, _ = io.WriteString(w, s)
	}
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

var _ process.Runner = (*Recorder)(nil)
