// Package model defines the core data structures used throughout
// the album-catalog application.
//
// # Album
//
// Album is one catalog record as loaded from the data source:
//
//	album := model.Album{Band: "Pink Floyd", Album: "Animals", Year: model.YearOf(1977)}
//	fmt.Println(album.Title()) // "Pink Floyd - Animals"
//
// Records are read-only once loaded. Filtering and rendering derive new
// slices from the loaded sequence and never modify an Album in place.
//
// # Track
//
// The tracklist is stored as a single ", "-delimited string, the convention
// used by existing data files. Tracks splits it into numbered entries:
//
//	for _, t := range album.Tracks() {
//	    fmt.Printf("%02d %s\n", t.Number, t.Title)
//	}
//
// # Year
//
// Year keeps the textual form of the release year because data files carry
// it either as a JSON number or as a string, and search matches it as text.
package model
