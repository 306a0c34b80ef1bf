package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/schmitthub/tsinit/internal/iostreams"
)

// HelpBinding renders a single "key description" pair.
func HelpBinding(keys, desc string) string {
	return iostreams.HelpKeyStyle.Render(keys) + " " + iostreams.HelpDescStyle.Render(desc)
}

// QuickHelp renders key bindings as a single help line.
func QuickHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, HelpBinding(h.Key, h.Desc))
	}
	return strings.Join(parts, iostreams.HelpSeparatorStyle.Render(" • "))
}
