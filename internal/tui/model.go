// Package tui provides the Bubble Tea terminal user interface of the album
// catalog.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/handiism/album-catalog/internal/catalog"
	"github.com/handiism/album-catalog/internal/covers"
	"github.com/handiism/album-catalog/internal/layout"
	"github.com/handiism/album-catalog/internal/logger"
	"github.com/handiism/album-catalog/internal/model"
	"github.com/handiism/album-catalog/internal/storage"
	"github.com/handiism/album-catalog/internal/theme"
	"github.com/handiism/album-catalog/internal/view"
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	headerHeight    = 1
	searchBoxHeight = 3
	chromeBottom    = 2 // floating bar + help line

	statusTTL = 3 * time.Second
)

// Loader fetches the catalog records. *catalog.Loader satisfies it.
type Loader interface {
	Load(ctx context.Context) ([]model.Album, error)
}

// Options wires the Model to its collaborators.
type Options struct {
	Loader Loader
	// Theme must already hold the restored preference.
	Theme *theme.Controller
	// Covers is optional; nil disables cover thumbnails.
	Covers *covers.Manager
	Log    *logger.Logger

	// Source labels the data source in the footer.
	Source         string
	SearchDebounce time.Duration
	RevealStagger  time.Duration

	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

// Model is the Bubble Tea model of the catalog browser. It owns every piece
// of UI state; nothing lives in package variables.
type Model struct {
	state  State
	loader Loader
	source string

	catalog *catalog.Catalog
	cards   []view.Card
	spans   []layout.Span
	cursor  int
	errMsg  string

	search     textinput.Model
	searchOpen bool
	debounce   debouncer

	modal        modal
	scrollLocked bool

	theme    *theme.Controller
	palette  theme.Palette
	markdown *glamour.TermRenderer
	mdWidth  int

	page         viewport.Model
	footerHeight int
	barHidden    bool

	stagger  time.Duration
	renderID int
	elapsed  time.Duration

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	covers    *covers.Manager
	clipboard func(string) error
	log       *logger.Logger

	status    string
	statusSeq int

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	ti := textinput.New()
	ti.Placeholder = "Buscar por banda, álbum ou ano"
	ti.CharLimit = 200
	ti.Prompt = "⌕ "

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	loader := opts.Loader
	if loader == nil {
		loader = catalog.NewLoader(opts.Source, nil)
	}

	themeCtl := opts.Theme
	if themeCtl == nil {
		themeCtl = theme.NewController(storage.NewMemoryStore(), opts.Log)
	}

	m := Model{
		state:     StateLoading,
		loader:    loader,
		source:    opts.Source,
		catalog:   catalog.New(nil),
		search:    ti,
		debounce:  debouncer{delay: opts.SearchDebounce},
		theme:     themeCtl,
		page:      viewport.New(defaultWidth, defaultHeight),
		stagger:   opts.RevealStagger,
		spinner:   sp,
		help:      help.New(),
		keys:      newKeyMap(),
		covers:    opts.Covers,
		clipboard: clip,
		log:       opts.Log.WithFields(map[string]any{"component": "tui"}),
		ctx:       ctx,
		cancel:    cancel,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.applyTheme()
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init starts the spinner and the catalog fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Cards returns the cards currently rendered in the page.
func (m Model) Cards() []view.Card {
	return m.cards
}

// ModalOpen reports whether the detail overlay is showing.
func (m Model) ModalOpen() bool {
	return m.modal.open
}

// ScrollLocked reports whether page scrolling is disabled.
func (m Model) ScrollLocked() bool {
	return m.scrollLocked
}

// FloatingBarVisible reports whether the floating bar is shown.
func (m Model) FloatingBarVisible() bool {
	return !m.barHidden
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme {
	return m.theme.Current()
}

// applyTheme refreshes every style that depends on the active theme.
func (m *Model) applyTheme() {
	m.palette = theme.PaletteFor(m.theme.Current())
	p := m.palette

	m.spinner.Style = p.Screen.Foreground(p.Accent)
	m.search.PromptStyle = p.Screen.Foreground(p.Accent)
	m.search.TextStyle = p.Screen
	m.search.PlaceholderStyle = p.Dim
	m.page.Style = p.Screen

	m.help.Styles.ShortKey = p.Screen.Foreground(p.Accent)
	m.help.Styles.ShortDesc = p.Dim
	m.help.Styles.ShortSeparator = p.Dim
	m.help.Styles.FullKey = p.Screen.Foreground(p.Accent)
	m.help.Styles.FullDesc = p.Dim
	m.help.Styles.FullSeparator = p.Dim
	m.help.Styles.Ellipsis = p.Dim

	m.markdown = nil
	m.buildMarkdown()
}

// resize lays the screen out for a width×height terminal.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.search.Width = max(width-8, 10)

	m.page.Width = width
	m.page.Height = max(height-m.pageTop()-chromeBottom, 3)
	m.buildMarkdown()
	m.refreshPage()
}

// pageTop is the screen row of the first page line.
func (m Model) pageTop() int {
	top := headerHeight
	if m.searchOpen {
		top += searchBoxHeight
	}
	return top
}

// modalWidth is the outer width of the detail panel.
func (m Model) modalWidth() int {
	return max(min(m.width-4, 72), 20)
}

// buildMarkdown prepares the glamour renderer for the modal description.
// It is rebuilt only when the theme or the wrap width changes.
func (m *Model) buildMarkdown() {
	width := m.modalWidth() - m.palette.Modal.GetHorizontalFrameSize()
	if m.markdown != nil && m.mdWidth == width {
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.theme.Current().GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.log.Error(err, "failed to create markdown renderer")
		m.markdown = nil
		return
	}
	m.markdown = r
	m.mdWidth = width
}

// Run starts the TUI application and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(
		NewModel(ctx, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
