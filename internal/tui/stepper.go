package tui

import (
	"strings"

	"github.com/schmitthub/tsinit/internal/iostreams"
	"github.com/schmitthub/tsinit/internal/text"
)

// StepState represents the state of a step in a stepper bar.
type StepState int

const (
	StepPending StepState = iota
	StepActive
	StepComplete
	// StepSkipped steps are hidden from the bar.
	StepSkipped
)

// Step represents a single step in a stepper bar.
type Step struct {
	Title string
	Value string // shown next to completed steps, e.g. "pnpm"
	State StepState
}

// RenderStepperBar renders a horizontal step indicator such as
//
//	✓ Package manager: pnpm → ◉ Install → ○ Git
//
// The result is truncated to width when width is positive.
func RenderStepperBar(steps []Step, width int) string {
	parts := make([]string, 0, len(steps))

	for _, step := range steps {
		switch step.State {
		case StepComplete:
			segment := iostreams.SuccessStyle.Render("✓") + " " + step.Title
			if step.Value != "" {
				segment += ": " + step.Value
			}
			parts = append(parts, segment)
		case StepActive:
			parts = append(parts, iostreams.TitleStyle.Render("◉ "+step.Title))
		case StepPending:
			parts = append(parts, iostreams.MutedStyle.Render("○ "+step.Title))
		}
	}

	result := strings.Join(parts, iostreams.MutedStyle.Render(" → "))
	if width > 0 && text.CountVisibleWidth(result) > width {
		result = text.Truncate(result, width)
	}
	return result
}
