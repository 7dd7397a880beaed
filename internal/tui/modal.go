package tui

import "github.com/handiism/album-catalog/internal/view"

// modal is the detail overlay. While open it holds a copy of the selected
// card and keeps the page scroll locked; closing restores the lock state
// that was in place before it opened.
type modal struct {
	open     bool
	card     view.Card
	prevLock bool
}

// Open shows card. Opening an already open modal only replaces the card.
func (md *modal) Open(card view.Card, scrollLocked *bool) {
	if !md.open {
		md.prevLock = *scrollLocked
	}
	md.card = card.Clone()
	md.open = true
	*scrollLocked = true
}

// Close hides the modal and restores the page scroll lock.
func (md *modal) Close(scrollLocked *bool) {
	if !md.open {
		return
	}
	md.open = false
	*scrollLocked = md.prevLock
}
