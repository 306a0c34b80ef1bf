package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings understood by wizard fields.
type KeyMap struct {
	Cancel key.Binding
	Back   key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Yes    key.Binding
	No     key.Binding
	Enter  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", "h", "l", "tab"),
			key.WithHelp("←→", "toggle"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

var keys = DefaultKeyMap()

// IsCancel returns true if the key message aborts the program.
func IsCancel(msg tea.KeyMsg) bool { return key.Matches(msg, keys.Cancel) }

// IsBack returns true if the key message matches the back key.
func IsBack(msg tea.KeyMsg) bool { return key.Matches(msg, keys.Back) }

// IsUp returns true if the key message matches up navigation keys.
func IsUp(msg tea.KeyMsg) bool { return key.Matches(msg, keys.Up) }

// IsDown returns true if the key message matches down navigation keys.
func IsDown(msg tea.KeyMsg) bool { return key.Matches(msg, keys.Down) }

// IsToggle returns true if the key message flips a yes/no choice.
func IsToggle(msg tea.KeyMsg) bool { return key.Matches(msg, keys.Toggle) }

// IsEnter returns true if the key message matches enter key.
func IsEnter(msg tea.KeyMsg) bool { return key.Matches(msg, keys.Enter) }

// IsYes returns true for the y key.
func IsYes(msg tea.KeyMsg) bool { return key.Matches(msg, keys.Yes) }

// IsNo returns true for the n key.
func IsNo(msg tea.KeyMsg) bool { return key.Matches(msg, keys.No) }
