package iostreams

import "github.com/charmbracelet/lipgloss"

// Named colors. These define the actual values and never change.
var (
	ColorBurntOrange = lipgloss.Color("#E8714A")
	ColorDeepSkyBlue = lipgloss.Color("#00BFFF")
	ColorEmerald     = lipgloss.Color("#04B575")
	ColorAmber       = lipgloss.Color("#FFCC00")
	ColorHotPink     = lipgloss.Color("#FF5F87")
	ColorDimGray     = lipgloss.Color("#626262")
	ColorSkyBlue     = lipgloss.Color("#87CEEB")
	ColorGold        = lipgloss.Color("#FFD700")
	ColorOnyx        = lipgloss.Color("#3C3C3C")
)

// Semantic theme. Swap the RHS to change the entire color theme.
var (
	ColorPrimary   = ColorBurntOrange
	ColorSecondary = ColorDeepSkyBlue
	ColorSuccess   = ColorEmerald
	ColorWarning   = ColorAmber
	ColorError     = ColorHotPink
	ColorMuted     = ColorDimGray
	ColorInfo      = ColorSkyBlue
	ColorSelected  = ColorGold
	ColorBorder    = ColorOnyx
)

// Text styles.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	CyanStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
)

// PanelTitleStyle renders prompt headings in the wizard.
var PanelTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorSecondary).
	Padding(0, 1)

// List styles.
var (
	ListItemSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Bold(true).
				Padding(0, 1)

	ListItemDimStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)
)

// Help bar styles.
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpSeparatorStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)
)
