package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/album-catalog/internal/model"
)

// Message types
type (
	// loadedMsg carries the records of a successful load.
	loadedMsg struct {
		albums []model.Album
	}

	// loadFailedMsg reports a load failure.
	loadFailedMsg struct {
		err error
	}

	// revealTickMsg advances the staggered card reveal of one render.
	revealTickMsg struct {
		render int
	}

	// coversDoneMsg is sent when the background cover prefetch ends.
	coversDoneMsg struct {
		err error
	}

	// clearStatusMsg removes a status message if it is still the latest.
	clearStatusMsg struct {
		seq int
	}
)

// loadCmd fetches the catalog once.
func (m Model) loadCmd() tea.Cmd {
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		albums, err := loader.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{albums: albums}
	}
}

// revealTick schedules the next reveal step for render.
func (m Model) revealTick(render int) tea.Cmd {
	return tea.Tick(m.stagger, func(time.Time) tea.Msg {
		return revealTickMsg{render: render}
	})
}

// prefetchCoversCmd downloads covers in the background.
func (m Model) prefetchCoversCmd(albums []model.Album) tea.Cmd {
	if m.covers == nil || len(albums) == 0 {
		return nil
	}
	mgr := m.covers
	ctx := m.ctx
	return func() tea.Msg {
		return coversDoneMsg{err: mgr.Prefetch(ctx, albums)}
	}
}

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
