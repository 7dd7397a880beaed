package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of styles the UI draws with.
type Palette struct {
	Name Theme

	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color

	// Screen is the page itself: theme foreground on theme background.
	Screen      lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Dim         lipgloss.Style
	Link        lipgloss.Style
	ErrorText   lipgloss.Style
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardHidden  lipgloss.Style
	Modal       lipgloss.Style
	Floating    lipgloss.Style
	Footer      lipgloss.Style
	SearchBox   lipgloss.Style
}

// PaletteFor returns the styles for t.
func PaletteFor(t Theme) Palette {
	if t == Light {
		return newPalette(Light, "#F7F3EA", "#1F1D1A", "#C2410C", "#8A8378", "#B91C1C")
	}
	return newPalette(Dark, "#121212", "#EDEDED", "#F8B500", "#6C757D", "#FF6B6B")
}

func newPalette(name Theme, bg, fg, accent, muted, errColor lipgloss.Color) Palette {
	// Every style except Floating paints the theme background.
	screen := lipgloss.NewStyle().Foreground(fg).Background(bg)

	card := screen.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		BorderBackground(bg).
		Padding(0, 1)

	return Palette{
		Name:       name,
		Background: bg,
		Foreground: fg,
		Accent:     accent,
		Muted:      muted,
		Error:      errColor,

		Screen:    screen,
		Title:     screen.Bold(true).Foreground(accent),
		Subtitle:  screen,
		Dim:       screen.Foreground(muted),
		Link:      screen.Foreground(accent).Underline(true),
		ErrorText: screen.Foreground(errColor).Bold(true),

		Card:        card,
		CardFocused: card.BorderForeground(accent),
		CardHidden:  card.BorderForeground(muted).Faint(true),

		Modal: screen.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			BorderBackground(bg).
			Padding(1, 2),

		Floating: lipgloss.NewStyle().Foreground(bg).Background(accent).Padding(0, 1),
		Footer: screen.
			Foreground(muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(muted).
			BorderBackground(bg),
		SearchBox: screen.
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			BorderBackground(bg).
			Padding(0, 1),
	}
}

// GlamourStyle names the glamour standard style matching t.
func (t Theme) GlamourStyle() string {
	if t == Light {
		return "light"
	}
	return "dark"
}
