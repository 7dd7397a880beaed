package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/handiism/album-catalog/internal/view"
)

const appTitle = "Catálogo de Álbuns"

// View renders the UI.
func (m Model) View() string {
	if m.modal.open {
		return m.modalView()
	}

	sections := []string{m.headerView()}
	if m.searchOpen {
		sections = append(sections, m.palette.SearchBox.Width(max(m.width-2, 10)).Render(m.search.View()))
	}
	sections = append(sections, m.page.View(), m.floatingBarView(), m.help.View(m.keys))

	return m.screen(lipgloss.Left, lipgloss.Top, lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// screen places content on a full-size canvas painted with the theme
// background.
func (m Model) screen(h, v lipgloss.Position, content string) string {
	return lipgloss.Place(m.width, m.height, h, v, content,
		lipgloss.WithWhitespaceBackground(m.palette.Background),
		lipgloss.WithWhitespaceForeground(m.palette.Foreground),
	)
}

func (m Model) headerView() string {
	left := m.palette.Title.Render(appTitle)

	count := ""
	if m.state == StateReady {
		if total := m.catalog.Len(); len(m.cards) < total {
			count = fmt.Sprintf("%d de %d álbuns  ", len(m.cards), total)
		} else {
			count = fmt.Sprintf("%d álbuns  ", total)
		}
	}
	right := m.palette.Dim.Render(count) + m.palette.Subtitle.Render(m.theme.Icon())

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + m.palette.Screen.Render(strings.Repeat(" ", gap)) + right
}

// floatingBarView is the one-line bar above the help line. It gives way to
// the footer when the footer is on screen; a status message always shows.
func (m Model) floatingBarView() string {
	if m.status != "" {
		return m.palette.Floating.Render(m.status)
	}
	if m.barHidden {
		return ""
	}
	return m.palette.Floating.Render("♪ y copia o link do Spotify  ·  ↵ detalhes  ·  / buscar")
}

// cardView draws one card. Cards that have not reached their reveal delay
// are drawn faint.
func (m Model) cardView(card view.Card, focused bool) string {
	style := m.palette.Card
	switch {
	case !card.Revealed(m.elapsed):
		style = m.palette.CardHidden
	case focused:
		style = m.palette.CardFocused
	}

	width := max(m.width-2, 20)
	inner := width - style.GetHorizontalFrameSize()

	lines := []string{
		m.palette.Title.Render(runewidth.Truncate(card.Title, inner, "…")),
		m.palette.Dim.Render(card.YearLine),
	}
	if card.Description != "" {
		lines = append(lines, m.palette.Subtitle.Render(wordwrap.String(card.Description, inner)))
	}
	if n := len(card.Tracks); n > 0 {
		lines = append(lines, m.palette.Dim.Render(fmt.Sprintf("%d faixas", n)))
	}
	if links := m.linksView(card); links != "" {
		lines = append(lines, links)
	}

	return style.Width(width - style.GetHorizontalBorderSize()).Render(strings.Join(lines, "\n"))
}

func (m Model) linksView(card view.Card) string {
	var parts []string
	for _, l := range []view.Link{card.Detail, card.Streaming} {
		if l.URL != "" {
			parts = append(parts, m.palette.Link.Render(l.Label))
		}
	}
	return strings.Join(parts, m.palette.Dim.Render("  ·  "))
}

func (m Model) footerView() string {
	source := m.source
	if source == "" {
		source = "-"
	}
	lines := []string{
		"Catálogo de álbuns · fonte: " + source,
		"Saiba Mais abre a página do álbum · Ouvir no Spotify abre o streaming",
	}
	return m.palette.Footer.Width(max(m.width-2, 20)).Render(strings.Join(lines, "\n"))
}

// modalPanel draws the detail panel for the open card.
func (m Model) modalPanel() string {
	card := m.modal.card
	style := m.palette.Modal.Width(m.modalWidth() - m.palette.Modal.GetHorizontalBorderSize())
	inner := m.modalWidth() - style.GetHorizontalFrameSize()

	lines := []string{
		m.palette.Title.Render(wordwrap.String(card.Title, inner)),
		m.palette.Dim.Render(card.YearLine),
		"",
	}

	if thumb, ok := m.coverThumbnail(card, inner); ok {
		lines = append(lines, thumb, "")
	} else if card.ImageURL != "" {
		lines = append(lines, m.palette.Dim.Render(wordwrap.String(m.coverAlt(card), inner)), "")
	}

	if card.Description != "" {
		lines = append(lines, m.renderMarkdown(card.Description, inner))
	}

	if len(card.Tracks) > 0 {
		lines = append(lines, m.palette.Subtitle.Bold(true).Render("Faixas"))
		for _, t := range card.Tracks {
			lines = append(lines, runewidth.Truncate(t, inner, "…"))
		}
		lines = append(lines, "")
	}

	for _, l := range []view.Link{card.Detail, card.Streaming} {
		if l.URL != "" {
			lines = append(lines, m.palette.Link.Render(l.Label)+" "+m.palette.Dim.Render(runewidth.Truncate(l.URL, max(inner-runewidth.StringWidth(l.Label)-1, 1), "…")))
		}
	}

	body := strings.Split(strings.Join(lines, "\n"), "\n")
	maxLines := max(m.height-style.GetVerticalFrameSize(), 1)
	if len(body) > maxLines {
		body = append(body[:maxLines-1], m.palette.Dim.Render("…"))
	}

	return style.Render(strings.Join(body, "\n"))
}

// coverThumbnail returns the card's cover drawn no wider than width.
func (m Model) coverThumbnail(card view.Card, width int) (string, bool) {
	if m.covers == nil || card.ImageURL == "" {
		return "", false
	}
	return m.covers.Fit(card.ImageURL, width)
}

// coverAlt is the text shown in place of a missing cover.
func (m Model) coverAlt(card view.Card) string {
	alt := "[" + card.ImageAlt + "]"
	if m.covers != nil && m.covers.Failed(card.ImageURL) != nil {
		alt += " capa indisponível"
	}
	return alt
}

// renderMarkdown renders the description through glamour, falling back to
// plain word wrap.
func (m Model) renderMarkdown(s string, width int) string {
	if m.markdown == nil {
		return wordwrap.String(s, width)
	}
	out, err := m.markdown.Render(s)
	if err != nil {
		m.log.Error(err, "failed to render description")
		return wordwrap.String(s, width)
	}
	return strings.Trim(out, "\n")
}

// modalView centers the detail panel on screen. Its position matches
// modalRect, which mouse presses are tested against.
func (m Model) modalView() string {
	return m.screen(lipgloss.Center, lipgloss.Center, m.modalPanel())
}
