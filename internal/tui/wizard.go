package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/tsinit/internal/iostreams"
)

// FieldKind identifies the type of field in a wizard step.
type FieldKind int

const (
	FieldSelect FieldKind = iota
	FieldText
	FieldConfirm
)

func (k FieldKind) String() string {
	switch k {
	case FieldSelect:
		return "select"
	case FieldText:
		return "text"
	case FieldConfirm:
		return "confirm"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// WizardField defines a single step in the wizard.
type WizardField struct {
	ID     string
	Title  string // stepper bar label
	Prompt string // question text
	Kind   FieldKind

	// FieldSelect
	Options    []FieldOption
	DefaultIdx int

	// FieldText
	Placeholder string
	Default     string
	Validator   func(string) error
	Required    bool

	// FieldConfirm
	DefaultYes bool

	// SkipIf hides the step when it returns true for the answers so far.
	SkipIf func(WizardValues) bool
}

// WizardValues maps field IDs to answers. Confirm fields store "yes"/"no".
type WizardValues map[string]string

// Bool reports whether a confirm field was answered "yes".
func (v WizardValues) Bool(id string) bool {
	return v[id] == "yes"
}

// WizardResult is returned by RunWizard.
type WizardResult struct {
	Values    WizardValues
	Submitted bool
}

type wizardModel struct {
	title   string
	defs    []WizardField
	fields  []stepField
	current int
	values  WizardValues
	width   int

	submitted bool
	cancelled bool
}

// newWizardModel builds the model. Malformed definitions are programming
// errors and panic.
func newWizardModel(title string, defs []WizardField) *wizardModel {
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if d.ID == "" {
			panic("WizardField.ID must not be empty")
		}
		if seen[d.ID] {
			panic(fmt.Sprintf("duplicate WizardField.ID: %q", d.ID))
		}
		seen[d.ID] = true
		if d.Kind == FieldSelect && len(d.Options) == 0 {
			panic(fmt.Sprintf("WizardField %q: select requires at least one option", d.ID))
		}
	}

	m := &wizardModel{
		title:  title,
		defs:   defs,
		fields: make([]stepField, len(defs)),
		values: make(WizardValues, len(defs)),
	}
	for i := range defs {
		m.fields[i] = buildField(defs[i])
	}

	if first := m.nextVisible(-1); first >= 0 {
		m.current = first
	} else {
		m.submitted = true
	}
	return m
}

func buildField(d WizardField) stepField {
	switch d.Kind {
	case FieldSelect:
		return NewSelectField(d.Prompt, d.Options, d.DefaultIdx)
	case FieldText:
		var opts []TextFieldOption
		if d.Placeholder != "" {
			opts = append(opts, WithPlaceholder(d.Placeholder))
		}
		if d.Default != "" {
			opts = append(opts, WithDefault(d.Default))
		}
		if d.Validator != nil {
			opts = append(opts, WithValidator(d.Validator))
		}
		if d.Required {
			opts = append(opts, WithRequired())
		}
		return NewTextField(d.Prompt, opts...)
	case FieldConfirm:
		return NewConfirmField(d.Prompt, d.DefaultYes)
	default:
		panic(fmt.Sprintf("unsupported FieldKind: %s", d.Kind))
	}
}

func (m *wizardModel) Init() tea.Cmd {
	if m.submitted || len(m.fields) == 0 {
		return tea.Quit
	}
	return tea.Batch(tea.WindowSize(), m.fields[m.current].Init())
}

func (m *wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.submitted || m.cancelled {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		for _, f := range m.fields {
			f.SetWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case IsCancel(msg):
			m.cancelled = true
			return m, tea.Quit
		case IsBack(msg):
			return m, m.goBack()
		}
	}

	f := m.fields[m.current]
	cmd := f.Update(msg)
	if f.Done() {
		return m, m.advance()
	}
	return m, cmd
}

func (m *wizardModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString("  ")
		b.WriteString(iostreams.TitleStyle.Render(m.title))
		b.WriteString("\n\n")
	}
	b.WriteString("  ")
	b.WriteString(RenderStepperBar(m.steps(), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.fields[m.current].View())
	b.WriteString("\n\n  ")
	b.WriteString(m.help())
	b.WriteString("\n")
	return b.String()
}

func (m *wizardModel) advance() tea.Cmd {
	m.values[m.defs[m.current].ID] = m.fields[m.current].Value()

	next := m.nextVisible(m.current)
	if next < 0 {
		m.submitted = true
		return tea.Quit
	}
	m.current = next
	return m.fields[next].Init()
}

// goBack reopens the previous visible step; on the first step it cancels.
func (m *wizardModel) goBack() tea.Cmd {
	prev := m.prevVisible(m.current)
	if prev < 0 {
		m.cancelled = true
		return tea.Quit
	}
	delete(m.values, m.defs[prev].ID)
	m.fields[prev] = buildField(m.defs[prev])
	m.fields[prev].SetWidth(m.width)
	m.current = prev
	return m.fields[prev].Init()
}

func (m *wizardModel) skipped(idx int) bool {
	skip := m.defs[idx].SkipIf
	return skip != nil && skip(m.values)
}

func (m *wizardModel) nextVisible(from int) int {
	for i := from + 1; i < len(m.defs); i++ {
		if !m.skipped(i) {
			return i
		}
	}
	return -1
}

func (m *wizardModel) prevVisible(from int) int {
	for i := from - 1; i >= 0; i-- {
		if !m.skipped(i) {
			return i
		}
	}
	return -1
}

func (m *wizardModel) steps() []Step {
	steps := make([]Step, len(m.defs))
	for i, d := range m.defs {
		step := Step{Title: d.Title}
		switch {
		case m.skipped(i):
			step.State = StepSkipped
		case i < m.current:
			step.State = StepComplete
			step.Value = m.values[d.ID]
		case i == m.current:
			step.State = StepActive
		default:
			step.State = StepPending
		}
		steps[i] = step
	}
	return steps
}

func (m *wizardModel) help() string {
	switch m.defs[m.current].Kind {
	case FieldSelect:
		return QuickHelp(keys.Up, keys.Down, keys.Enter, keys.Back, keys.Cancel)
	case FieldConfirm:
		return QuickHelp(keys.Toggle, keys.Yes, keys.No, keys.Enter, keys.Back, keys.Cancel)
	default:
		return QuickHelp(keys.Enter, keys.Back, keys.Cancel)
	}
}

var _ tea.Model = (*wizardModel)(nil)
