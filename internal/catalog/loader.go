package catalog

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/handiism/album-catalog/internal/catalog/dto"
	"github.com/handiism/album-catalog/internal/http"
	"github.com/handiism/album-catalog/internal/model"
)

// DefaultSource is the catalog document read when nothing else is configured.
const DefaultSource = "data.json"

// Fetcher retrieves a remote document. *http.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Loader reads the catalog document from a fixed source.
type Loader struct {
	source  string
	fetcher Fetcher
}

// NewLoader creates a Loader for source. An empty source means DefaultSource.
// A nil fetcher gets a default http.Client.
func NewLoader(source string, fetcher Fetcher) *Loader {
	if source == "" {
		source = DefaultSource
	}
	if fetcher == nil {
		fetcher = http.NewClient("", 0)
	}
	return &Loader{source: source, fetcher: fetcher}
}

// Source returns the URL or path the loader reads.
func (l *Loader) Source() string {
	return l.source
}

// Load fetches and decodes the catalog, preserving record order.
//
// Every failure is a *LoadError matching ErrLoadFailure. Nothing is returned
// alongside an error.
func (l *Loader) Load(ctx context.Context) ([]model.Album, error) {
	var (
		data []byte
		err  error
	)

	if IsRemote(l.source) {
		data, err = l.fetcher.Get(ctx, l.source)
		if err != nil {
			return nil, &LoadError{Source: l.source, Op: "fetch", Err: err}
		}
	} else {
		data, err = os.ReadFile(strings.TrimPrefix(l.source, "file://"))
		if err != nil {
			return nil, &LoadError{Source: l.source, Op: "read", Err: err}
		}
	}

	albums, err := dto.DecodeAlbums(data)
	if err != nil {
		return nil, &LoadError{Source: l.source, Op: "decode", Err: err}
	}

	return albums, nil
}

// IsRemote reports whether source is an http or https URL.
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}
