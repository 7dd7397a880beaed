package model

import (
	"strconv"
	"strings"
)

// TracklistSeparator is the delimiter between track names in Album.Tracklist.
const TracklistSeparator = ", "

// Album represents one catalog record.
//
// Album contains everything a card or the detail modal shows:
//   - Band and Album for the title line and for search
//   - Year for the release line and for search (matched as text)
//   - Description and Tracklist for the detail view
//   - ImageURL, DetailLink and StreamingLink, used verbatim
//
// Example:
//
//	album := Album{
//	    Band:      "Radiohead",
//	    Album:     "OK Computer",
//	    Year:      YearOf(1997),
//	    Tracklist: "Airbag, Paranoid Android",
//	}
//	album.Tracks() // [{1 Airbag} {2 Paranoid Android}]
type Album struct {
	// Band is the artist name.
	Band string

	// Album is the album title.
	Album string

	// Year is the release year in textual form.
	Year Year

	// Description is a free-form text about the album.
	Description string

	// Tracklist holds every track name joined by TracklistSeparator.
	Tracklist string

	// ImageURL is the cover art location. Empty means no cover.
	ImageURL string

	// DetailLink points to a page with more information about the album.
	DetailLink string

	// StreamingLink points to the album on a streaming service.
	StreamingLink string
}

// Title returns the card heading, "<band> - <album>".
func (a Album) Title() string {
	return a.Band + " - " + a.Album
}

// HasCover returns true if the album has cover art available.
func (a Album) HasCover() bool {
	return a.ImageURL != ""
}

// CoverAlt returns the text shown in place of the cover when no image is available.
func (a Album) CoverAlt() string {
	return "Capa do álbum " + a.Album + " da banda " + a.Band
}

// Track is one entry of an album tracklist.
type Track struct {
	// Number is the 1-indexed position in the tracklist.
	Number int

	// Title is the track name.
	Title string
}

// Tracks splits Tracklist on TracklistSeparator, preserving order.
//
// An empty tracklist yields no tracks. Track names are not trimmed beyond
// the separator itself, so "A,B" stays a single track named "A,B".
func (a Album) Tracks() []Track {
	if a.Tracklist == "" {
		return nil
	}

	names := strings.Split(a.Tracklist, TracklistSeparator)
	tracks := make([]Track, len(names))
	for i, name := range names {
		tracks[i] = Track{Number: i + 1, Title: name}
	}
	return tracks
}

// Year is a release year kept in the textual form it is matched against.
type Year string

// YearOf converts a numeric year into a Year.
func YearOf(y int) Year {
	return Year(strconv.Itoa(y))
}

// String implements fmt.Stringer.
func (y Year) String() string {
	return string(y)
}
