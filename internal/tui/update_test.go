package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/album-catalog/internal/catalog"
	"github.com/handiism/album-catalog/internal/logger"
	"github.com/handiism/album-catalog/internal/model"
	"github.com/handiism/album-catalog/internal/storage"
	"github.com/handiism/album-catalog/internal/theme"
)

type stubLoader struct {
	albums []model.Album
	err    error
}

func (s stubLoader) Load(context.Context) ([]model.Album, error) {
	return s.albums, s.err
}

func twoRecords() []model.Album {
	return []model.Album{
		{Band: "A", Album: "X", Year: model.YearOf(1999), StreamingLink: "https://open.spotify.com/album/x"},
		{Band: "B", Album: "Y", Year: model.YearOf(2001)},
	}
}

func manyRecords(n int) []model.Album {
	out := make([]model.Album, n)
	for i := range out {
		out[i] = model.Album{Band: fmt.Sprintf("Band %d", i), Album: fmt.Sprintf("Album %d", i), Year: model.YearOf(1970 + i)}
	}
	return out
}

type testEnv struct {
	store  *storage.MemoryStore
	copied []string
}

func newTestModel(t *testing.T, env *testEnv) Model {
	t.Helper()
	env.store = storage.NewMemoryStore()
	ctl := theme.NewController(env.store, logger.Nop())
	_, err := ctl.Load(context.Background())
	require.NoError(t, err)

	return NewModel(context.Background(), Options{
		Loader:         stubLoader{},
		Theme:          ctl,
		Log:            logger.Nop(),
		Source:         "data.json",
		SearchDebounce: 10 * time.Millisecond,
		Clipboard: func(s string) error {
			env.copied = append(env.copied, s)
			return nil
		},
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func loaded(t *testing.T, records []model.Album) Model {
	t.Helper()
	m := newTestModel(t, &testEnv{})
	m, _ = update(t, m, loadedMsg{albums: records})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func search(t *testing.T, m Model, query string) Model {
	t.Helper()
	m, _ = update(t, m, runes("/"))
	for _, r := range query {
		m, _ = update(t, m, runes(string(r)))
	}
	require.Equal(t, query, m.search.Value())
	m, _ = update(t, m, searchMsg{seq: m.debounce.seq, query: m.search.Value()})
	return m
}

func TestInit_StartsLoad(t *testing.T) {
	m := newTestModel(t, &testEnv{})
	assert.Equal(t, StateLoading, m.State())
	assert.NotNil(t, m.Init())
}

func TestLoadCmd(t *testing.T) {
	m := newTestModel(t, &testEnv{})
	m.loader = stubLoader{albums: twoRecords()}
	msg := m.loadCmd()()
	require.IsType(t, loadedMsg{}, msg)
	assert.Len(t, msg.(loadedMsg).albums, 2)

	m.loader = stubLoader{err: errors.New("boom")}
	assert.IsType(t, loadFailedMsg{}, m.loadCmd()())
}

func TestLoaded_RendersAllRecords(t *testing.T) {
	m := loaded(t, twoRecords())

	assert.Equal(t, StateReady, m.State())
	require.Len(t, m.Cards(), 2)
	assert.Equal(t, "A - X", m.Cards()[0].Title)
	assert.Equal(t, "B - Y", m.Cards()[1].Title)
	assert.Contains(t, m.View(), "A - X")
}

func TestSearch_Scenarios(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "199", want: []string{"A - X"}},
		{query: "b", want: []string{"B - Y"}},
		{query: "z", want: nil},
		{query: "", want: []string{"A - X", "B - Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			m := search(t, loaded(t, twoRecords()), tt.query)

			var got []string
			for _, c := range m.Cards() {
				got = append(got, c.Title)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearch_NeverCompounds(t *testing.T) {
	m := search(t, loaded(t, twoRecords()), "z")
	require.Empty(t, m.Cards())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = update(t, m, searchMsg{seq: m.debounce.seq, query: m.search.Value()})
	assert.Len(t, m.Cards(), 2)
}

func TestSearch_StaleDebounceIsDropped(t *testing.T) {
	m := loaded(t, twoRecords())
	m, _ = update(t, m, runes("/"))
	m, _ = update(t, m, runes("z"))
	stale := m.debounce.seq
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	m, _ = update(t, m, searchMsg{seq: stale, query: "z"})
	assert.Len(t, m.Cards(), 2)

	m, _ = update(t, m, searchMsg{seq: m.debounce.seq, query: ""})
	assert.Len(t, m.Cards(), 2)
}

func TestSearch_TypingSchedulesDebounce(t *testing.T) {
	m := loaded(t, twoRecords())
	m, _ = update(t, m, runes("/"))
	before := m.debounce.seq

	m, cmd := update(t, m, runes("a"))
	assert.NotNil(t, cmd)
	assert.Equal(t, before+1, m.debounce.seq)
	assert.Len(t, m.Cards(), 2, "filter waits for the quiet period")
}

func TestSearchToggle(t *testing.T) {
	m := loaded(t, twoRecords())
	top := m.pageTop()

	m, _ = update(t, m, runes("/"))
	assert.True(t, m.searchOpen)
	assert.True(t, m.search.Focused())
	assert.Greater(t, m.pageTop(), top)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.searchOpen)
	assert.False(t, m.search.Focused())
	assert.Equal(t, top, m.pageTop())
}

func TestLoadFailure_ShowsOneMessageAndNoCards(t *testing.T) {
	m := newTestModel(t, &testEnv{})
	err := &catalog.LoadError{Source: "https://example.com/data.json", Op: "fetch", Err: errors.New("HTTP 500")}

	m, _ = update(t, m, loadFailedMsg{err: err})

	assert.Equal(t, StateError, m.State())
	assert.Empty(t, m.Cards())
	assert.Equal(t, 1, strings.Count(m.View(), catalog.UserMessage))
}

func TestRender_TwiceKeepsCount(t *testing.T) {
	m := loaded(t, twoRecords())
	m.render(twoRecords())
	m.render(twoRecords())
	assert.Len(t, m.Cards(), 2)
	assert.Len(t, m.spans, 2)
}

func TestRender_ResetsCursorAndScroll(t *testing.T) {
	m := loaded(t, manyRecords(30))
	m, _ = update(t, m, runes("G"))
	require.NotZero(t, m.page.YOffset)

	m.render(manyRecords(30))
	assert.Zero(t, m.cursor)
	assert.Zero(t, m.page.YOffset)
}

func TestModal_OpenCloseRestoresLock(t *testing.T) {
	m := loaded(t, twoRecords())
	require.False(t, m.ScrollLocked())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.ModalOpen())
	assert.True(t, m.ScrollLocked())
	assert.Equal(t, "B - Y", m.modal.card.Title)
	assert.Contains(t, m.View(), "B - Y")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ModalOpen())
	assert.False(t, m.ScrollLocked())
}

func TestModal_ReopenKeepsPreviousLock(t *testing.T) {
	m := loaded(t, twoRecords())
	m.modal.Open(m.cards[0], &m.scrollLocked)
	m.modal.Open(m.cards[1], &m.scrollLocked)
	assert.Equal(t, "B - Y", m.modal.card.Title)

	m.modal.Close(&m.scrollLocked)
	assert.False(t, m.ScrollLocked())
}

func TestModal_HoldsCopyOfCard(t *testing.T) {
	records := twoRecords()
	records[0].Tracklist = "One, Two"
	m := loaded(t, records)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.cards[0].Tracks[0] = "changed"
	assert.Equal(t, "01 One", m.modal.card.Tracks[0])
}

func TestMouse_PressOnCardOpensModal(t *testing.T) {
	m := loaded(t, twoRecords())
	y := m.pageTop() + m.spans[1].Start + 1

	m, _ = update(t, m, press(5, y))
	require.True(t, m.ModalOpen())
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, "B - Y", m.modal.card.Title)
}

func TestMouse_PressOutsidePanelCloses(t *testing.T) {
	m := loaded(t, twoRecords())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.ModalOpen())

	r := m.modalRect()
	m, _ = update(t, m, press(r.X+r.Width/2, r.Y+r.Height/2))
	assert.True(t, m.ModalOpen(), "press inside the panel keeps it open")

	m, _ = update(t, m, press(0, 0))
	assert.False(t, m.ModalOpen())
	assert.False(t, m.ScrollLocked())
}

func TestModal_CloseWhileSearchFocused(t *testing.T) {
	m := loaded(t, twoRecords())
	m, _ = update(t, m, runes("/"))
	require.True(t, m.search.Focused())

	m, _ = update(t, m, press(5, m.pageTop()+m.spans[0].Start+1))
	require.True(t, m.ModalOpen())

	m, _ = update(t, m, runes("z"))
	assert.Empty(t, m.search.Value(), "keys go to the modal, not the hidden input")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.ModalOpen())
	assert.False(t, m.ScrollLocked())
	assert.True(t, m.searchOpen, "closing the modal leaves the search box alone")
}

func TestScroll_LockedWhileModalOpen(t *testing.T) {
	m := loaded(t, manyRecords(30))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.ScrollLocked())

	m, _ = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Zero(t, m.page.YOffset)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, wheelStep, m.page.YOffset)
}

func TestFloatingBar_HidesAtFooter(t *testing.T) {
	m := loaded(t, manyRecords(30))
	assert.True(t, m.FloatingBarVisible())

	m, _ = update(t, m, runes("G"))
	assert.False(t, m.FloatingBarVisible())

	m, _ = update(t, m, runes("g"))
	assert.True(t, m.FloatingBarVisible())
}

func TestFloatingBar_ShortPageShowsFooter(t *testing.T) {
	m := loaded(t, twoRecords())
	assert.False(t, m.FloatingBarVisible())
}

func TestFloatingBar_Boundary(t *testing.T) {
	m := loaded(t, manyRecords(30))
	total := m.page.TotalLineCount()
	boundary := total - m.footerHeight - m.page.Height

	m.page.SetYOffset(boundary - 1)
	m.updateFloatingBar()
	assert.True(t, m.FloatingBarVisible())

	m.page.SetYOffset(boundary)
	m.updateFloatingBar()
	assert.False(t, m.FloatingBarVisible())
}

func TestCursor_StaysInBounds(t *testing.T) {
	m := loaded(t, twoRecords())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	for range 5 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 1, m.cursor)
}

func TestCursor_ScrollsIntoView(t *testing.T) {
	m := loaded(t, manyRecords(30))
	for range 10 {
		m, _ = update(t, m, runes("j"))
	}
	span := m.spans[m.cursor]
	assert.GreaterOrEqual(t, span.Start, m.page.YOffset)
	assert.LessOrEqual(t, span.End, m.page.YOffset+m.page.Height)
}

func TestThemeToggle_RoundTrip(t *testing.T) {
	env := &testEnv{}
	m := newTestModel(t, env)
	m, _ = update(t, m, loadedMsg{albums: twoRecords()})
	require.Equal(t, theme.Dark, m.Theme())

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, theme.Light, m.Theme())
	assert.Equal(t, theme.Light, m.palette.Name)
	stored, ok, err := env.store.Get(context.Background(), theme.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", stored)

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, theme.Dark, m.Theme())
	stored, _, _ = env.store.Get(context.Background(), theme.StorageKey)
	assert.Equal(t, "dark", stored)
}

func TestThemeToggle_RepaintsBackground(t *testing.T) {
	m := loaded(t, twoRecords())
	dark := theme.PaletteFor(theme.Dark).Background
	assert.Equal(t, dark, m.palette.Screen.GetBackground())
	assert.Equal(t, dark, m.page.Style.GetBackground())

	m, _ = update(t, m, runes("t"))
	light := theme.PaletteFor(theme.Light).Background
	assert.Equal(t, light, m.palette.Screen.GetBackground())
	assert.Equal(t, light, m.palette.Subtitle.GetBackground())
	assert.Equal(t, light, m.page.Style.GetBackground())
	assert.Equal(t, light, m.search.TextStyle.GetBackground())
	assert.Equal(t, light, m.help.Styles.ShortDesc.GetBackground())
}

func TestView_FillsScreen(t *testing.T) {
	m := loaded(t, twoRecords())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	withModal, _ := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, withModal.ModalOpen())

	for _, v := range []string{m.View(), withModal.View()} {
		assert.Equal(t, 60, lipgloss.Width(v))
		assert.Equal(t, 30, lipgloss.Height(v))
	}
}

func TestHeader_ShowsFilteredCount(t *testing.T) {
	m := loaded(t, twoRecords())
	assert.Contains(t, m.headerView(), "2 álbuns")

	m = search(t, m, "b")
	assert.Contains(t, m.headerView(), "1 de 2 álbuns")
}

func TestCopy_StreamingLink(t *testing.T) {
	env := &testEnv{}
	m := newTestModel(t, env)
	m, _ = update(t, m, loadedMsg{albums: twoRecords()})

	m, cmd := update(t, m, runes("y"))
	assert.NotNil(t, cmd)
	assert.Equal(t, []string{"https://open.spotify.com/album/x"}, env.copied)
	assert.Equal(t, "Link copiado", m.status)

	m, _ = update(t, m, clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, m.status)
}

func TestCopy_NoLink(t *testing.T) {
	env := &testEnv{}
	m := newTestModel(t, env)
	m, _ = update(t, m, loadedMsg{albums: twoRecords()})
	m, _ = update(t, m, runes("j"))

	m, _ = update(t, m, runes("y"))
	assert.Empty(t, env.copied)
	assert.Equal(t, "Nenhum link disponível", m.status)
}

func TestReveal_TicksUntilAllShown(t *testing.T) {
	m := newTestModel(t, &testEnv{})
	m.stagger = time.Millisecond
	m, cmd := update(t, m, loadedMsg{albums: twoRecords()})
	require.NotNil(t, cmd)
	assert.False(t, m.allRevealed())

	m, cmd = update(t, m, revealTickMsg{render: m.renderID})
	assert.True(t, m.allRevealed())
	assert.Nil(t, cmd)

	m.render(twoRecords())
	old := m.renderID - 1
	elapsed := m.elapsed
	m, _ = update(t, m, revealTickMsg{render: old})
	assert.Equal(t, elapsed, m.elapsed, "ticks of a replaced render are ignored")
}

func TestQuit(t *testing.T) {
	m := loaded(t, twoRecords())
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestResize(t *testing.T) {
	m := loaded(t, twoRecords())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.page.Width)
	assert.Equal(t, 40-m.pageTop()-chromeBottom, m.page.Height)
}
