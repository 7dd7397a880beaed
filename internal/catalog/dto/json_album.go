package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/handiism/album-catalog/internal/model"
)

// JSONYear handles the "ano" field, which data files carry either as a
// number (1977) or as a string ("1977").
type JSONYear struct {
	Text string
}

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (jy *JSONYear) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		jy.Text = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		jy.Text = s
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unable to parse year: %s", data)
	}
	// Integral years print without a fraction; anything else keeps its literal form.
	if i, err := n.Int64(); err == nil {
		jy.Text = strconv.FormatInt(i, 10)
		return nil
	}
	jy.Text = n.String()
	return nil
}

// MarshalJSON writes numeric years as numbers and anything else as a string.
func (jy JSONYear) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(jy.Text, 10, 64); err == nil && strconv.FormatInt(n, 10) == jy.Text {
		return []byte(jy.Text), nil
	}
	return json.Marshal(jy.Text)
}

// JSONAlbum represents one record of the catalog data file.
//
// Field names follow the existing data files.
type JSONAlbum struct {
	Band          string   `json:"banda"`
	Album         string   `json:"album"`
	Year          JSONYear `json:"ano"`
	Description   string   `json:"descricao"`
	Tracklist     string   `json:"tracklist"`
	Image         string   `json:"imagem"`
	Link          string   `json:"link"`
	StreamingLink string   `json:"spotify_link"`
}

// ToAlbum converts JSONAlbum to a model.Album.
func (ja *JSONAlbum) ToAlbum() model.Album {
	return model.Album{
		Band:          ja.Band,
		Album:         ja.Album,
		Year:          model.Year(ja.Year.Text),
		Description:   ja.Description,
		Tracklist:     ja.Tracklist,
		ImageURL:      ja.Image,
		DetailLink:    ja.Link,
		StreamingLink: ja.StreamingLink,
	}
}

// FromAlbum converts a model.Album back into its wire form.
func FromAlbum(a model.Album) JSONAlbum {
	return JSONAlbum{
		Band:          a.Band,
		Album:         a.Album,
		Year:          JSONYear{Text: a.Year.String()},
		Description:   a.Description,
		Tracklist:     a.Tracklist,
		Image:         a.ImageURL,
		Link:          a.DetailLink,
		StreamingLink: a.StreamingLink,
	}
}

// DecodeAlbums parses a JSON array of records, preserving their order.
func DecodeAlbums(data []byte) ([]model.Album, error) {
	var raw []JSONAlbum
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	albums := make([]model.Album, len(raw))
	for i := range raw {
		albums[i] = raw[i].ToAlbum()
	}
	return albums, nil
}

// EncodeAlbums writes records as an indented JSON array in the data file format.
func EncodeAlbums(albums []model.Album) ([]byte, error) {
	raw := make([]JSONAlbum, len(albums))
	for i, a := range albums {
		raw[i] = FromAlbum(a)
	}
	return json.MarshalIndent(raw, "", "  ")
}
