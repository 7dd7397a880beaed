// Package http provides the HTTP client used to fetch the catalog document
// and cover art.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Non-200 responses, reported as *StatusError
//
// # Basic Usage
//
//	client := http.NewClient("AlbumCatalog", 30*time.Second)
//
//	data, err := client.Get(ctx, "https://example.com/data.json")
//	var statusErr *http.StatusError
//	if errors.As(err, &statusErr) {
//	    fmt.Println(statusErr.StatusCode)
//	}
package http
