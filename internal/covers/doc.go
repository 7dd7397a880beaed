// Package covers fetches album cover art in the background and keeps
// terminal thumbnails of it.
//
// The Manager downloads every distinct cover URL of a record sequence with a
// bounded number of concurrent requests, turns each image into a half-block
// thumbnail and caches the result:
//
//	mgr := covers.NewManager(client, covers.Options{MaxCols: 24, Concurrency: 4}, log)
//	go mgr.Prefetch(ctx, albums)
//
//	if art, ok := mgr.Get(album.ImageURL); ok {
//	    fmt.Println(art)
//	}
//
// A cover that fails to download or decode is logged and skipped; the
// catalog is fully usable without covers.
package covers
