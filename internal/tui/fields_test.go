package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestSelectField_NavigationWraps(t *testing.T) {
	f := NewSelectField("Pick", []FieldOption{{Label: "a"}, {Label: "b"}, {Label: "c"}}, 5)
	assert.Equal(t, 0, f.SelectedIndex(), "out of range default clamps to 0")

	f.Update(keyMsg(tea.KeyUp))
	assert.Equal(t, "c", f.Value())

	f.Update(runes("j"))
	assert.Equal(t, "a", f.Value())

	f.Update(keyMsg(tea.KeyEnter))
	assert.True(t, f.Done())
}

func TestSelectField_View(t *testing.T) {
	f := NewSelectField("Which package manager?", []FieldOption{
		{Label: "npm", Description: "default"},
		{Label: "pnpm"},
	}, 1)

	view := f.View()
	assert.Contains(t, view, "Which package manager?")
	assert.Contains(t, view, "default")
	assert.Contains(t, view, "> ")
}

func TestConfirmField_Keys(t *testing.T) {
	f := NewConfirmField("Install?", true)
	assert.Equal(t, "yes", f.Value())

	f.Update(keyMsg(tea.KeyLeft))
	assert.False(t, f.BoolValue())

	f.Update(runes("y"))
	assert.True(t, f.BoolValue())

	f.Update(runes("N"))
	assert.Equal(t, "no", f.Value())
	assert.False(t, f.Done())

	f.Update(keyMsg(tea.KeyEnter))
	assert.True(t, f.Done())
	assert.Contains(t, f.View(), "[ Yes ]")
}

func TestTextField_DefaultAndTrim(t *testing.T) {
	f := NewTextField("Name", WithDefault("  my-app  "), WithPlaceholder("my-app"))
	f.SetWidth(40)

	f.Update(keyMsg(tea.KeyEnter))
	assert.True(t, f.Done())
	assert.Equal(t, "my-app", f.Value())
	assert.Empty(t, f.Err())
}
