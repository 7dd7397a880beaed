// Package app assembles the long-lived services shared by the command line
// entry points: settings, logging, the preference store, the theme
// controller, the catalog loader and the cover manager.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/handiism/album-catalog/internal/catalog"
	"github.com/handiism/album-catalog/internal/config"
	"github.com/handiism/album-catalog/internal/covers"
	cataloghttp "github.com/handiism/album-catalog/internal/http"
	"github.com/handiism/album-catalog/internal/logger"
	"github.com/handiism/album-catalog/internal/storage"
	"github.com/handiism/album-catalog/internal/theme"
	"github.com/handiism/album-catalog/internal/tui"
)

// StderrLog is the LogFile value that sends logs to standard error.
const StderrLog = "-"

// Options are the command line overrides applied on top of the settings
// file.
type Options struct {
	// ConfigPath defaults to config.DefaultPath().
	ConfigPath string
	// Source overrides the data_source setting.
	Source string
	// Verbose forces debug logging.
	Verbose bool
	// LogFile overrides the log destination. StderrLog writes human
	// readable logs to Stderr.
	LogFile string
	Stderr  io.Writer
}

// App bundles the services created at startup.
type App struct {
	Settings *config.Settings
	Log      *logger.Logger
	Store    storage.Store
	Theme    *theme.Controller
	Client   *cataloghttp.Client
	Loader   *catalog.Loader

	closers []io.Closer
}

// LoadSettings reads the settings file and applies the overrides in opts.
func LoadSettings(opts Options) (*config.Settings, error) {
	path := opts.ConfigPath
	if strings.TrimSpace(path) == "" {
		path = config.DefaultPath()
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if opts.Source != "" {
		settings.DataSource = opts.Source
	}
	if opts.Verbose {
		settings.LogLevel = "debug"
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// New loads settings, opens the log and the preference store, and restores
// the saved theme. Call Close when done.
func New(ctx context.Context, opts Options) (*App, error) {
	settings, err := LoadSettings(opts)
	if err != nil {
		return nil, err
	}

	a := &App{Settings: settings}

	a.Log, err = a.openLog(opts)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	store, err := storage.OpenSQLite(ctx, settings.PreferencesPath())
	if err != nil {
		a.Log.Error(err, "failed to open preference store")
		a.Log.Warn("preferences kept in memory for this session")
		a.Store = storage.NewMemoryStore()
	} else {
		a.Log.WithFields(map[string]any{"path": store.Path()}).Debug("preference store opened")
		a.Store = store
		a.closers = append(a.closers, store)
	}

	a.Theme = theme.NewController(a.Store, a.Log.WithFields(map[string]any{"component": "theme"}))
	if _, err := a.Theme.Load(ctx); err != nil {
		a.Log.Error(err, "failed to restore theme")
	}

	a.Client = cataloghttp.NewClient(settings.UserAgent, settings.RequestTimeout)
	a.Loader = catalog.NewLoader(settings.DataSource, a.Client)

	a.Log.WithFields(map[string]any{
		"source": a.Loader.Source(),
		"theme":  a.Theme.Current().String(),
	}).Debug("application initialized")

	return a, nil
}

func (a *App) openLog(opts Options) (*logger.Logger, error) {
	level := a.Settings.LogLevel

	if opts.LogFile == StderrLog {
		w := opts.Stderr
		if w == nil {
			w = os.Stderr
		}
		return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: w})
	}

	path := opts.LogFile
	if path == "" {
		path = a.Settings.LogPath()
	}
	log, closer, err := logger.OpenFile(path, level)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closer)
	return log, nil
}

// Covers returns a cover manager, or nil when covers are disabled.
func (a *App) Covers() *covers.Manager {
	if !a.Settings.ShowCovers {
		return nil
	}
	return covers.NewManager(a.Client, covers.Options{
		MaxCols:     a.Settings.CoverMaxWidth,
		Concurrency: a.Settings.MaxConcurrentCovers,
	}, a.Log)
}

// BrowseOptions wires the terminal UI to the application services.
func (a *App) BrowseOptions() tui.Options {
	return tui.Options{
		Loader:         a.Loader,
		Theme:          a.Theme,
		Covers:         a.Covers(),
		Log:            a.Log,
		Source:         a.Loader.Source(),
		SearchDebounce: a.Settings.SearchDebounce,
		RevealStagger:  a.Settings.RevealStagger,
	}
}

// Browse runs the terminal UI until the user quits.
func (a *App) Browse(ctx context.Context) error {
	a.Log.Info("starting browser")
	err := tui.Run(ctx, a.BrowseOptions())
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Log.Error(err, "browser exited with error")
		return err
	}
	return nil
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
