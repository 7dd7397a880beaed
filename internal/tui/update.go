package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/album-catalog/internal/catalog"
	"github.com/handiism/album-catalog/internal/layout"
	"github.com/handiism/album-catalog/internal/model"
	"github.com/handiism/album-catalog/internal/view"
)

const wheelStep = 3

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshPage()
		return m, cmd

	case loadedMsg:
		m.state = StateReady
		m.catalog = catalog.New(msg.albums)
		m.log.Info("catalog loaded")
		cmd := m.render(m.catalog.All())
		return m, tea.Batch(cmd, m.prefetchCoversCmd(msg.albums))

	case loadFailedMsg:
		m.state = StateError
		m.log.Error(msg.err, "failed to load catalog")
		m.errMsg = catalog.UserMessage
		m.cards = nil
		m.spans = nil
		m.refreshPage()
		return m, nil

	case searchMsg:
		if !m.debounce.Current(msg) || m.state != StateReady {
			return m, nil
		}
		return m, m.render(m.catalog.Search(msg.query))

	case revealTickMsg:
		if msg.render != m.renderID {
			return m, nil
		}
		m.elapsed += m.stagger
		m.refreshPage()
		if m.allRevealed() {
			return m, nil
		}
		return m, m.revealTick(msg.render)

	case coversDoneMsg:
		if msg.err != nil {
			m.log.Debug("cover prefetch cancelled")
			return m, nil
		}
		if m.covers != nil {
			done, total := m.covers.Progress()
			m.log.WithFields(map[string]any{"done": done, "total": total}).Debug("cover prefetch finished")
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.cancel()
		return m, tea.Quit
	}

	// The modal hides the search box and takes keys first.
	if m.modal.open {
		return m.handleModalKey(msg)
	}

	if m.searchOpen && m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		return m, m.toggleSearch()

	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyStreamingLink()

	case key.Matches(msg, m.keys.Open):
		if m.cursor < len(m.cards) {
			m.modal.Open(m.cards[m.cursor], &m.scrollLocked)
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.page.Height)

	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.page.Height)

	case key.Matches(msg, m.keys.Top):
		if !m.scrollLocked {
			m.cursor = 0
			m.refreshPage()
			m.page.GotoTop()
			m.updateFloatingBar()
		}

	case key.Matches(msg, m.keys.Bottom):
		if !m.scrollLocked {
			m.cursor = max(len(m.cards)-1, 0)
			m.refreshPage()
			m.page.GotoBottom()
			m.updateFloatingBar()
		}
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, m.toggleSearch()
	case tea.KeyEnter, tea.KeyTab:
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.debounce.Schedule(m.search.Value()))
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.modal.Close(&m.scrollLocked)
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyStreamingLink()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if m.modal.open {
		if !m.modalRect().Contains(msg.X, msg.Y) {
			m.modal.Close(&m.scrollLocked)
		}
		return m, nil
	}

	if idx := m.cardAt(msg.Y); idx >= 0 {
		m.cursor = idx
		m.refreshPage()
		m.modal.Open(m.cards[idx], &m.scrollLocked)
	}
	return m, nil
}

// cardAt maps a screen row to the index of the card drawn there, or -1.
func (m Model) cardAt(y int) int {
	row := y - m.pageTop()
	if row < 0 || row >= m.page.Height {
		return -1
	}
	return layout.SpanAt(m.spans, row+m.page.YOffset)
}

// modalRect is the screen rectangle covered by the detail panel.
func (m Model) modalRect() layout.Rect {
	panel := m.modalPanel()
	return layout.Centered(m.width, m.height, lipgloss.Width(panel), lipgloss.Height(panel))
}

// render replaces the whole card list with records in a single page
// update. Cards are rebuilt from scratch; nothing is diffed.
func (m *Model) render(records []model.Album) tea.Cmd {
	m.cards = view.Render(records, m.stagger)
	m.cursor = 0
	m.renderID++
	m.elapsed = 0
	m.refreshPage()
	m.page.GotoTop()
	m.updateFloatingBar()

	if m.allRevealed() {
		return nil
	}
	return m.revealTick(m.renderID)
}

// allRevealed reports whether every card has passed its reveal delay.
func (m Model) allRevealed() bool {
	if len(m.cards) == 0 || m.stagger <= 0 {
		return true
	}
	return m.cards[len(m.cards)-1].Revealed(m.elapsed)
}

// refreshPage redraws the card column and footer into the viewport and
// records the line span of every card.
func (m *Model) refreshPage() {
	var b strings.Builder
	spans := make([]layout.Span, 0, len(m.cards))
	line := 0

	switch m.state {
	case StateLoading:
		block := m.spinner.View() + " Carregando álbuns..."
		b.WriteString(block + "\n")
		line += lipgloss.Height(block)
	case StateError:
		block := m.palette.ErrorText.Render(m.errMsg)
		b.WriteString(block + "\n")
		line += lipgloss.Height(block)
	}

	for i, card := range m.cards {
		block := m.cardView(card, i == m.cursor)
		b.WriteString(block + "\n")
		h := lipgloss.Height(block)
		spans = append(spans, layout.Span{Start: line, End: line + h})
		line += h
	}

	footer := m.footerView()
	b.WriteString(footer)
	m.footerHeight = lipgloss.Height(footer)

	m.spans = spans
	m.page.SetContent(b.String())
	m.updateFloatingBar()
}

// moveCursor changes the selected card and keeps it on screen.
func (m *Model) moveCursor(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.cards)-1)
	m.refreshPage()
	m.ensureCursorVisible()
}

// ensureCursorVisible scrolls the page so the selected card is in view.
func (m *Model) ensureCursorVisible() {
	if m.scrollLocked || m.cursor >= len(m.spans) {
		return
	}
	span := m.spans[m.cursor]
	switch {
	case span.Start < m.page.YOffset:
		m.page.SetYOffset(span.Start)
	case span.End > m.page.YOffset+m.page.Height:
		m.page.SetYOffset(span.End - m.page.Height)
	}
	m.updateFloatingBar()
}

// scrollBy moves the page by delta lines unless scrolling is locked.
func (m *Model) scrollBy(delta int) {
	if m.scrollLocked {
		return
	}
	m.page.SetYOffset(m.page.YOffset + delta)
	m.updateFloatingBar()
}

// updateFloatingBar hides the floating bar once the footer scrolls into
// view.
func (m *Model) updateFloatingBar() {
	m.barHidden = layout.FloatingBarHidden(
		m.page.Height,
		m.page.YOffset,
		m.page.TotalLineCount(),
		m.footerHeight,
	)
}

// toggleSearch shows or hides the search box. Showing it focuses the
// input. The current query stays in effect while hidden.
func (m *Model) toggleSearch() tea.Cmd {
	m.searchOpen = !m.searchOpen
	var cmd tea.Cmd
	if m.searchOpen {
		cmd = m.search.Focus()
	} else {
		m.search.Blur()
	}
	m.resize(m.width, m.height)
	return cmd
}

// toggleTheme flips the theme and restyles everything right away. A
// persistence failure leaves the new theme active and shows a status.
func (m *Model) toggleTheme() tea.Cmd {
	_, err := m.theme.Toggle(m.ctx)
	m.applyTheme()
	m.refreshPage()
	if err != nil {
		return m.setStatus("Não foi possível salvar o tema")
	}
	return nil
}

// copyStreamingLink copies the selected (or open) card's streaming link.
func (m *Model) copyStreamingLink() tea.Cmd {
	var card view.Card
	switch {
	case m.modal.open:
		card = m.modal.card
	case m.cursor < len(m.cards):
		card = m.cards[m.cursor]
	default:
		return nil
	}

	url := card.Streaming.URL
	if url == "" {
		url = card.Detail.URL
	}
	if url == "" {
		return m.setStatus("Nenhum link disponível")
	}
	if err := m.clipboard(url); err != nil {
		m.log.Error(err, "failed to copy link")
		return m.setStatus("Falha ao copiar o link")
	}
	return m.setStatus("Link copiado")
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	return clearStatusAfter(statusTTL, m.statusSeq)
}
