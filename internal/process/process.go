// Package process runs external commands such as package manager installs.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrNotFound is returned when the command binary is not on PATH.
var ErrNotFound = errors.New("command not found")

// Command describes one external invocation.
type Command struct {
	Dir    string
	Name   string
	Args   []string
	Env    []string // appended to the inherited environment
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for logs and messages.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner runs commands to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Command string
	Code    int
	Err     error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// LookPath resolves binaries; defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// NewExecRunner returns an ExecRunner using exec.LookPath.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{LookPath: exec.LookPath}
}

// Run starts cmd and waits for it. A cancelled ctx kills the process.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	lookPath := r.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	path, err := lookPath(cmd.Name)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, cmd.Name)
	}

	c := exec.CommandContext(ctx, path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr
	if len(cmd.Env) > 0 {
		c.Env = append(c.Environ(), cmd.Env...)
	}

	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", cmd, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: cmd.String(), Code: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("running %s: %w", cmd, err)
	}
	return nil
}
