package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/tsinit/internal/iostreams"
	"github.com/schmitthub/tsinit/internal/text"
)

// stepField is one interactive question inside a wizard. Fields mutate in
// place and report completion through Done; the wizard owns quitting.
type stepField interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	Value() string
	Done() bool
	SetWidth(w int)
}

// FieldOption represents a selectable option with a label and description.
type FieldOption struct {
	Label       string
	Description string
}

// ---------------------------------------------------------------------------
// SelectField
// ---------------------------------------------------------------------------

// SelectField is an arrow-key selection over a fixed option list.
// Navigation wraps around at both ends.
type SelectField struct {
	Prompt  string
	Options []FieldOption
	cursor  int
	done    bool
}

// NewSelectField creates a SelectField. defaultIdx is clamped to the list.
func NewSelectField(prompt string, options []FieldOption, defaultIdx int) *SelectField {
	if defaultIdx < 0 || defaultIdx >= len(options) {
		defaultIdx = 0
	}
	return &SelectField{Prompt: prompt, Options: options, cursor: defaultIdx}
}

func (f *SelectField) Init() tea.Cmd { return nil }

func (f *SelectField) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(f.Options) == 0 {
		return nil
	}
	switch {
	case IsEnter(km):
		f.done = true
	case IsUp(km):
		f.cursor = (f.cursor - 1 + len(f.Options)) % len(f.Options)
	case IsDown(km):
		f.cursor = (f.cursor + 1) % len(f.Options)
	}
	return nil
}

// View renders the prompt followed by one aligned line per option:
//
//	> pnpm  fast, disk space efficient
//	  bun   all-in-one toolkit
func (f *SelectField) View() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(iostreams.PanelTitleStyle.Render(f.Prompt))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, opt := range f.Options {
		labelWidth = max(labelWidth, text.CountVisibleWidth(opt.Label))
	}

	for i, opt := range f.Options {
		label := text.PadRight(opt.Label, labelWidth)
		if i == f.cursor {
			b.WriteString("  > ")
			b.WriteString(iostreams.ListItemSelectedStyle.Render(label))
		} else {
			b.WriteString("    ")
			b.WriteString(label)
		}
		if opt.Description != "" {
			b.WriteString("  ")
			b.WriteString(iostreams.ListItemDimStyle.Render(opt.Description))
		}
		if i < len(f.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Value returns the label of the highlighted option.
func (f *SelectField) Value() string {
	if len(f.Options) == 0 {
		return ""
	}
	return f.Options[f.cursor].Label
}

// SelectedIndex returns the index of the highlighted option.
func (f *SelectField) SelectedIndex() int { return f.cursor }

func (f *SelectField) Done() bool { return f.done }

func (f *SelectField) SetWidth(int) {}

// ---------------------------------------------------------------------------
// TextField
// ---------------------------------------------------------------------------

// TextField wraps bubbles/textinput with inline validation. A failing
// validator keeps the field open and shows the error under the input.
type TextField struct {
	Prompt    string
	input     textinput.Model
	validator func(string) error
	required  bool
	errMsg    string
	done      bool
}

// TextFieldOption configures a TextField.
type TextFieldOption func(*TextField)

// WithPlaceholder sets the placeholder text shown when the input is empty.
func WithPlaceholder(s string) TextFieldOption {
	return func(f *TextField) { f.input.Placeholder = s }
}

// WithDefault sets the initial value of the text input.
func WithDefault(s string) TextFieldOption {
	return func(f *TextField) { f.input.SetValue(s) }
}

// WithValidator sets a validation function run on Enter.
func WithValidator(fn func(string) error) TextFieldOption {
	return func(f *TextField) { f.validator = fn }
}

// WithRequired rejects blank input on Enter.
func WithRequired() TextFieldOption {
	return func(f *TextField) { f.required = true }
}

// NewTextField creates a focused TextField.
func NewTextField(prompt string, opts ...TextFieldOption) *TextField {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Focus()

	f := &TextField{Prompt: prompt, input: ti}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *TextField) Init() tea.Cmd { return textinput.Blink }

func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && IsEnter(km) {
		f.errMsg = ""
		val := strings.TrimSpace(f.input.Value())

		if f.required && val == "" {
			f.errMsg = "This field is required"
			return nil
		}
		if f.validator != nil {
			if err := f.validator(val); err != nil {
				f.errMsg = err.Error()
				return nil
			}
		}
		f.done = true
		return nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *TextField) View() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(iostreams.PanelTitleStyle.Render(f.Prompt))
	b.WriteString("\n\n  ")
	b.WriteString(f.input.View())
	if f.errMsg != "" {
		b.WriteString("\n  ")
		b.WriteString(iostreams.ErrorStyle.Render("! " + f.errMsg))
	}
	return b.String()
}

// Value returns the trimmed input.
func (f *TextField) Value() string { return strings.TrimSpace(f.input.Value()) }

// Err returns the current validation message, or "" when valid.
func (f *TextField) Err() string { return f.errMsg }

func (f *TextField) Done() bool { return f.done }

func (f *TextField) SetWidth(w int) {
	f.input.Width = max(w-6, 1)
}

// ---------------------------------------------------------------------------
// ConfirmField
// ---------------------------------------------------------------------------

// ConfirmField is a yes/no toggle.
type ConfirmField struct {
	Prompt string
	value  bool
	done   bool
}

// NewConfirmField creates a ConfirmField with the given default.
func NewConfirmField(prompt string, defaultYes bool) *ConfirmField {
	return &ConfirmField{Prompt: prompt, value: defaultYes}
}

func (f *ConfirmField) Init() tea.Cmd { return nil }

func (f *ConfirmField) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case IsEnter(km):
		f.done = true
	case IsToggle(km):
		f.value = !f.value
	case IsYes(km):
		f.value = true
	case IsNo(km):
		f.value = false
	}
	return nil
}

func (f *ConfirmField) View() string {
	yes, no := iostreams.MutedStyle, iostreams.ListItemSelectedStyle
	if f.value {
		yes, no = iostreams.ListItemSelectedStyle, iostreams.MutedStyle
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(iostreams.PanelTitleStyle.Render(f.Prompt))
	b.WriteString("\n\n  ")
	b.WriteString(yes.Render("[ Yes ]"))
	b.WriteString("  ")
	b.WriteString(no.Render("[ No ]"))
	return b.String()
}

// Value returns "yes" or "no".
func (f *ConfirmField) Value() string {
	if f.value {
		return "yes"
	}
	return "no"
}

// BoolValue returns the toggle state.
func (f *ConfirmField) BoolValue() bool { return f.value }

func (f *ConfirmField) Done() bool { return f.done }

func (f *ConfirmField) SetWidth(int) {}
