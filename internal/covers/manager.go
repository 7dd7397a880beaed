package covers

import (
	"context"
	"image"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	ioutils "github.com/handiism/album-catalog/internal/io"
	"github.com/handiism/album-catalog/internal/logger"
	"github.com/handiism/album-catalog/internal/model"
)

// Downloader retrieves raw image bytes. *http.Client satisfies it.
type Downloader interface {
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// Options tunes a Manager.
type Options struct {
	// MaxCols is the thumbnail width in terminal cells.
	MaxCols int
	// Concurrency bounds simultaneous downloads.
	Concurrency int
}

// Manager coordinates cover downloads and caches thumbnails by URL.
type Manager struct {
	downloader   Downloader
	imageService *ioutils.ImageService
	opts         Options
	log          *logger.Logger

	mu     sync.RWMutex
	thumbs map[string]thumbnail
	failed map[string]error

	total int32
	done  int32
}

// thumbnail is a cached cover: the resized image and its rendering at
// Options.MaxCols.
type thumbnail struct {
	img image.Image
	art string
}

// NewManager creates a cover Manager.
func NewManager(downloader Downloader, opts Options, log *logger.Logger) *Manager {
	if opts.MaxCols <= 0 {
		opts.MaxCols = 24
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &Manager{
		downloader:   downloader,
		imageService: ioutils.NewImageService(),
		opts:         opts,
		log:          log.WithFields(map[string]any{"component": "covers"}),
		thumbs:       make(map[string]thumbnail),
		failed:       make(map[string]error),
	}
}

// Prefetch downloads the covers of albums that are not cached yet.
//
// Individual failures are recorded and logged, not returned. The only
// error is ctx's, when the prefetch was cancelled.
func (m *Manager) Prefetch(ctx context.Context, albums []model.Album) error {
	urls := m.pending(albums)
	atomic.AddInt32(&m.total, int32(len(urls)))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Concurrency)

	for _, url := range urls {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m.fetch(ctx, url)
			atomic.AddInt32(&m.done, 1)
			return nil
		})
	}

	return g.Wait()
}

// pending returns the distinct cover URLs of albums that are neither cached
// nor known to fail, in first-seen order.
func (m *Manager) pending(albums []model.Album) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool)
	var urls []string
	for _, a := range albums {
		if !a.HasCover() || seen[a.ImageURL] {
			continue
		}
		seen[a.ImageURL] = true
		if _, ok := m.thumbs[a.ImageURL]; ok {
			continue
		}
		if _, ok := m.failed[a.ImageURL]; ok {
			continue
		}
		urls = append(urls, a.ImageURL)
	}
	return urls
}

func (m *Manager) fetch(ctx context.Context, url string) {
	data, err := m.downloader.DownloadBytes(ctx, url)
	if err != nil {
		m.fail(url, err, "cover download failed")
		return
	}

	thumb, err := m.imageService.Thumbnail(ctx, data, m.opts.MaxCols)
	if err != nil {
		m.fail(url, err, "cover decode failed")
		return
	}

	art := m.imageService.HalfBlocks(thumb)

	m.mu.Lock()
	m.thumbs[url] = thumbnail{img: thumb, art: art}
	m.mu.Unlock()

	m.log.WithFields(map[string]any{"url": url}).Debug("cover cached")
}

func (m *Manager) fail(url string, err error, msg string) {
	m.mu.Lock()
	m.failed[url] = err
	m.mu.Unlock()

	m.log.WithFields(map[string]any{"url": url}).Error(err, msg)
}

// Fit returns the cached thumbnail for url drawn at most maxCols cells
// wide. Narrower widths are resized from the cached image; maxCols <= 0
// means Options.MaxCols.
func (m *Manager) Fit(url string, maxCols int) (string, bool) {
	m.mu.RLock()
	th, ok := m.thumbs[url]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if maxCols <= 0 || th.img.Bounds().Dx() <= maxCols {
		return th.art, true
	}

	small, err := m.imageService.Fit(th.img, maxCols)
	if err != nil {
		return "", false
	}
	return m.imageService.HalfBlocks(small), true
}

// Failed returns the error recorded for url, if any.
func (m *Manager) Failed(url string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.failed[url]
}

// Progress returns how many covers were processed out of those requested.
func (m *Manager) Progress() (done, total int32) {
	return atomic.LoadInt32(&m.done), atomic.LoadInt32(&m.total)
}
