// Package prompter implements line-based prompts on top of IOStreams.
// Prompts are written to stderr so stdout stays clean for data output.
package prompter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/schmitthub/tsinit/internal/iostreams"
)

// ErrRequired is returned when a required answer is empty.
var ErrRequired = errors.New("required input missing")

// ErrInvalidSelection is returned when every Select attempt was invalid.
var ErrInvalidSelection = errors.New("invalid selection")

// selectAttempts bounds how often Select asks again after a bad answer.
const selectAttempts = 3

// Prompter provides interactive prompting functionality.
// A single buffered reader is shared by all prompts so answers piped in
// ahead of time are not swallowed by an earlier read.
type Prompter struct {
	ios    *iostreams.IOStreams
	reader *bufio.Reader
}

// NewPrompter creates a new Prompter with the given IOStreams.
func NewPrompter(ios *iostreams.IOStreams) *Prompter {
	return &Prompter{ios: ios}
}

// PromptConfig configures a string prompt.
type PromptConfig struct {
	Message   string
	Default   string
	Required  bool
	Validator func(string) error
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned as-is; io.EOF is only reported when nothing
// was read.
func (p *Prompter) readLine() (string, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.ios.In)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// String prompts the user for a string value.
// Returns the default if the user enters nothing.
// In non-interactive mode, returns the default without prompting.
func (p *Prompter) String(cfg PromptConfig) (string, error) {
	if !p.ios.CanPrompt() {
		if cfg.Required && cfg.Default == "" {
			return "", fmt.Errorf("%w in non-interactive mode", ErrRequired)
		}
		return cfg.Default, nil
	}

	prompt := cfg.Message
	if cfg.Default != "" {
		prompt = fmt.Sprintf("%s [%s]", cfg.Message, cfg.Default)
	}

	fmt.Fprintf(p.ios.ErrOut, "%s: ", prompt)

	response, err := p.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.ios.ErrOut)
			if cfg.Default == "" && cfg.Required {
				return "", ErrRequired
			}
			response = ""
		} else {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}

	if response == "" {
		response = cfg.Default
	}

	if cfg.Required && response == "" {
		return "", ErrRequired
	}

	if cfg.Validator != nil {
		if err := cfg.Validator(response); err != nil {
			return "", err
		}
	}

	return response, nil
}

// Confirm prompts the user for a yes/no confirmation.
// In non-interactive mode, returns the default without prompting.
func (p *Prompter) Confirm(message string, defaultYes bool) (bool, error) {
	if !p.ios.CanPrompt() {
		return defaultYes, nil
	}

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Fprintf(p.ios.ErrOut, "%s %s ", message, hint)

	response, err := p.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.ios.ErrOut)
			return defaultYes, nil
		}
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	switch strings.ToLower(response) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// SelectOption represents an option in a selection prompt.
type SelectOption struct {
	Label       string
	Description string
}

// Select prompts the user to select from a list of options.
// The answer may be the option number or its label. A bad answer is
// reported and asked again, up to three attempts in total.
// Returns the index of the selected option.
// In non-interactive mode, returns the defaultIdx without prompting.
func (p *Prompter) Select(message string, options []SelectOption, defaultIdx int) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options provided")
	}

	if defaultIdx < 0 || defaultIdx >= len(options) {
		defaultIdx = 0
	}

	if !p.ios.CanPrompt() {
		return defaultIdx, nil
	}

	fmt.Fprintf(p.ios.ErrOut, "%s:\n", message)
	for i, opt := range options {
		marker := "  "
		if i == defaultIdx {
			marker = "> "
		}
		if opt.Description != "" {
			fmt.Fprintf(p.ios.ErrOut, "%s%d. %s (%s)\n", marker, i+1, opt.Label, opt.Description)
		} else {
			fmt.Fprintf(p.ios.ErrOut, "%s%d. %s\n", marker, i+1, opt.Label)
		}
	}

	var response string
	for attempt := 1; ; attempt++ {
		fmt.Fprintf(p.ios.ErrOut, "Enter selection [%d]: ", defaultIdx+1)

		var err error
		response, err = p.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(p.ios.ErrOut)
				return defaultIdx, nil
			}
			return -1, fmt.Errorf("failed to read input: %w", err)
		}

		if response == "" {
			return defaultIdx, nil
		}
		if idx, ok := matchOption(options, response); ok {
			return idx, nil
		}
		if attempt == selectAttempts {
			break
		}
		fmt.Fprintf(p.ios.ErrOut, "%q is not one of the options, enter a number from 1 to %d or a name\n", response, len(options))
	}
	return -1, fmt.Errorf("%w: %s", ErrInvalidSelection, response)
}

// matchOption resolves a 1-based number or a case-insensitive label.
func matchOption(options []SelectOption, response string) (int, bool) {
	if idx, err := strconv.Atoi(response); err == nil {
		if idx < 1 || idx > len(options) {
			return -1, false
		}
		return idx - 1, true
	}
	for i, opt := range options {
		if strings.EqualFold(opt.Label, response) {
			return i, true
		}
	}
	return -1, false
}
