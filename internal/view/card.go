// Package view maps catalog records to structured card descriptions.
//
// A Card holds everything needed to draw one record without knowing the
// drawing surface. The terminal UI styles Cards with lipgloss; the list
// command prints them as plain text.
package view

import (
	"fmt"
	"time"

	"github.com/handiism/album-catalog/internal/model"
)

// DefaultStagger is the reveal delay added per card index.
const DefaultStagger = 50 * time.Millisecond

// Link is a labelled URL.
type Link struct {
	Label string
	URL   string
}

// Card is the view description of one album record.
type Card struct {
	// Index is the position of the card in the rendered sequence.
	Index int

	Title       string
	YearLine    string
	Description string
	Tracks      []string

	ImageURL string
	ImageAlt string

	Detail    Link
	Streaming Link

	// RevealDelay is Index × stagger. It only affects when the card is
	// first drawn at full intensity.
	RevealDelay time.Duration

	// Album is the record the card was built from.
	Album model.Album
}

// NewCard builds the Card for album at position index.
func NewCard(album model.Album, index int, stagger time.Duration) Card {
	tracks := album.Tracks()
	names := make([]string, len(tracks))
	for i, t := range tracks {
		names[i] = fmt.Sprintf("%02d %s", t.Number, t.Title)
	}

	return Card{
		Index:       index,
		Title:       album.Title(),
		YearLine:    "Ano: " + album.Year.String(),
		Description: album.Description,
		Tracks:      names,
		ImageURL:    album.ImageURL,
		ImageAlt:    album.CoverAlt(),
		Detail:      Link{Label: "Saiba Mais", URL: album.DetailLink},
		Streaming:   Link{Label: "Ouvir no Spotify", URL: album.StreamingLink},
		RevealDelay: time.Duration(index) * stagger,
		Album:       album,
	}
}

// Render builds one Card per record, in order.
func Render(records []model.Album, stagger time.Duration) []Card {
	cards := make([]Card, len(records))
	for i, r := range records {
		cards[i] = NewCard(r, i, stagger)
	}
	return cards
}

// Clone returns a copy of c that shares no slices with it.
func (c Card) Clone() Card {
	out := c
	if c.Tracks != nil {
		out.Tracks = append([]string(nil), c.Tracks...)
	}
	return out
}

// Revealed reports whether the card should be fully drawn after elapsed.
func (c Card) Revealed(elapsed time.Duration) bool {
	return elapsed >= c.RevealDelay
}
