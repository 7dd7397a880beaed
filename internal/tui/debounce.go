package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// searchMsg fires when the search input has been quiet for the debounce
// delay.
type searchMsg struct {
	seq   int
	query string
}

// debouncer delays searches until typing pauses. Every Schedule supersedes
// the previous one: the earlier tick still fires but carries a stale
// sequence number and is dropped.
type debouncer struct {
	delay time.Duration
	seq   int
}

// Schedule returns a command that emits a searchMsg for query after the
// quiet period.
func (d *debouncer) Schedule(query string) tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return searchMsg{seq: seq, query: query}
	})
}

// Current reports whether msg comes from the latest Schedule.
func (d debouncer) Current(msg searchMsg) bool {
	return msg.seq == d.seq
}
