package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/tsinit/internal/iostreams"
)

// RunProgram runs a BubbleTea program on the given IOStreams and returns the
// final model. The UI is drawn on stderr so stdout stays clean.
func RunProgram(ios *iostreams.IOStreams, model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	teaOpts := append([]tea.ProgramOption{
		tea.WithInput(ios.In),
		tea.WithOutput(ios.ErrOut),
	}, opts...)

	return tea.NewProgram(model, teaOpts...).Run()
}

// RunWizard shows the fields as a multi-step wizard. Submitted is false when
// the user cancelled with Esc on the first step or Ctrl+C.
func RunWizard(ios *iostreams.IOStreams, title string, fields []WizardField, opts ...tea.ProgramOption) (WizardResult, error) {
	m := newWizardModel(title, fields)
	if m.submitted {
		return WizardResult{Values: m.values, Submitted: true}, nil
	}

	final, err := RunProgram(ios, m, opts...)
	if err != nil {
		return WizardResult{}, fmt.Errorf("running wizard: %w", err)
	}

	wm, ok := final.(*wizardModel)
	if !ok {
		return WizardResult{}, fmt.Errorf("unexpected wizard model %T", final)
	}
	return WizardResult{Values: wm.values, Submitted: wm.submitted}, nil
}
