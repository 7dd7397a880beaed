// Package catalog loads the album records and searches them.
//
// # Loading
//
// A Loader fetches the catalog document once. The source is either an
// http(s) URL, fetched with a single GET, or a local file path:
//
//	loader := catalog.NewLoader("data.json", client)
//	albums, err := loader.Load(ctx)
//	if errors.Is(err, catalog.ErrLoadFailure) {
//	    // network, status, file or JSON problem; no partial data
//	}
//
// Load is not retried.
//
// # Searching
//
// Filter keeps the records whose band, album or year contains the query,
// ignoring case, in their original order:
//
//	c := catalog.New(albums)
//	c.Search("199") // every record from the 1990s
//	c.Search("")    // everything
//
// A Catalog always filters the sequence it was created with, so successive
// searches never narrow each other.
package catalog
