package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pokesearch/internal/pokedex"
	"github.com/five82/pokesearch/internal/prefs"
)

type fakeSource struct {
	roster []pokedex.Creature
	err    error
	calls  int
}

func (f *fakeSource) FetchRoster(context.Context) ([]pokedex.Creature, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.roster, nil
}

func sampleRoster() []pokedex.Creature {
	return []pokedex.Creature{
		{
			ID:   1,
			Name: pokedex.Name{English: "Bulbasaur"},
			Type: []string{"Grass", "Poison"},
			Base: pokedex.Stats{{Key: "HP", Value: 45}, {Key: "Attack", Value: 49}, {Key: "Defense", Value: 49},
				{Key: "Sp. Attack", Value: 65}, {Key: "Sp. Defense", Value: 65}, {Key: "Speed", Value: 45}},
		},
		{
			ID:   4,
			Name: pokedex.Name{English: "Charmander"},
			Type: []string{"Fire"},
			Base: pokedex.Stats{{Key: "HP", Value: 39}, {Key: "Attack", Value: 52}, {Key: "Defense", Value: 43},
				{Key: "Sp. Attack", Value: 60}, {Key: "Sp. Defense", Value: 50}, {Key: "Speed", Value: 65}},
		},
		{
			ID:   5,
			Name: pokedex.Name{English: "Charmeleon"},
			Type: []string{"Fire"},
			Base: pokedex.Stats{{Key: "HP", Value: 58}},
		},
	}
}

func newTestModel(t *testing.T, src pokedex.RosterSource) Model {
	t.Helper()
	m := New(Options{
		Source:      src,
		SourceLabel: "test",
		PrefsPath:   filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m.copyText = func(string) error { return nil }
	return m
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T) Model {
	t.Helper()
	return send(newTestModel(t, nil), rosterLoadedMsg{id: "test", roster: sampleRoster()})
}

func TestInit_FetchOnStartOnly(t *testing.T) {
	m := newTestModel(t, &fakeSource{})
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("Init without fetch-on-start should not issue a command")
	}

	src := &fakeSource{roster: sampleRoster()}
	m = New(Options{Source: src, FetchOnStart: true})
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("Init with fetch-on-start should issue a fetch")
	}
	msg, ok := cmd().(rosterLoadedMsg)
	if !ok || len(msg.roster) != 3 || src.calls != 1 {
		t.Fatalf("fetch command = %#v (calls %d), want loaded roster", msg, src.calls)
	}
}

func TestFetchKey_LoadsRoster(t *testing.T) {
	src := &fakeSource{roster: sampleRoster()}
	m := newTestModel(t, src)

	_, cmd := m.Update(runes("r"))
	if cmd == nil {
		t.Fatalf("r should issue a fetch command")
	}
	m = send(m, cmd())
	s := m.Session()
	if !s.Loaded || len(s.Roster) != 3 {
		t.Fatalf("session = %#v, want 3 loaded creatures", s)
	}
}

func TestFetchFailure_LeavesRosterUnchanged(t *testing.T) {
	m := loaded(t)
	before := m.Session()

	cmd := fetchRosterCmd(context.Background(), &fakeSource{err: errors.New("connection refused")}, "test")
	msg := cmd()
	if _, ok := msg.(rosterFailedMsg); !ok {
		t.Fatalf("msg = %#v, want rosterFailedMsg", msg)
	}
	m = send(m, msg)
	if !reflect.DeepEqual(m.Session(), before) {
		t.Fatalf("failed fetch changed the session")
	}

	empty := send(newTestModel(t, nil), fetchRosterCmd(context.Background(), nil, "")())
	if empty.Session().Loaded {
		t.Fatalf("nil source should not load anything")
	}
}

func TestFilterInput_UpdatesSessionPerKeystroke(t *testing.T) {
	m := send(loaded(t), runes("/"))
	if m.focus != PaneFilter {
		t.Fatalf("focus = %v, want filter", m.focus)
	}

	m = send(m, runes("c"))
	if got := m.Session().Filter; got != "c" {
		t.Fatalf("Filter = %q, want c", got)
	}
	m = send(m, runes("HAR"))
	if got := m.Session().Filter; got != "cHAR" {
		t.Fatalf("Filter = %q, want cHAR", got)
	}
	if got := len(m.Session().Visible()); got != 2 {
		t.Fatalf("visible = %d, want Charmander and Charmeleon", got)
	}

	// q is text while the filter is focused.
	m = send(m, runes("q"))
	if got := m.Session().Filter; got != "cHARq" {
		t.Fatalf("Filter = %q, want cHARq", got)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != PaneTable {
		t.Fatalf("esc should return focus to the table")
	}
	if got := m.Session().Filter; got != "cHAR" {
		t.Fatalf("Filter = %q, want cHAR after backspace", got)
	}
}

func TestSelect_ActivatesRowUnderCursor(t *testing.T) {
	m := send(loaded(t), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	sel := m.Session().Selected
	want := m.Session().Visible()[1]
	if sel == nil || !reflect.DeepEqual(*sel, want) {
		t.Fatalf("Selected = %#v, want %#v", sel, want)
	}

	m = send(m, runes("G"), runes(" "))
	if m.Session().Selected.Name.English != "Charmeleon" {
		t.Fatalf("Selected = %q, want Charmeleon", m.Session().Selected.Name.English)
	}
}

func TestCursor_ClampsWhenFilterShrinksList(t *testing.T) {
	m := send(loaded(t), runes("G"))
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}
	m = send(m, runes("/"), runes("bulba"))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 after filter", m.cursor)
	}
	m = send(m, runes("zzz"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().Selected != nil {
		t.Fatalf("enter on an empty list should not select")
	}
}

func TestReload_KeepsFilterAndSelection(t *testing.T) {
	m := send(loaded(t), tea.KeyMsg{Type: tea.KeyEnter}, runes("/"), runes("char"), tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, rosterLoadedMsg{id: "again", roster: sampleRoster()[1:]})

	s := m.Session()
	if s.Filter != "char" {
		t.Fatalf("Filter = %q, want char", s.Filter)
	}
	if s.Selected == nil || s.Selected.Name.English != "Bulbasaur" {
		t.Fatalf("Selected = %#v, want stale Bulbasaur", s.Selected)
	}
}

func TestView_RendersDetailAndNoFilterHeading(t *testing.T) {
	m := send(loaded(t), tea.WindowSizeMsg{Width: 120, Height: 30})
	view := m.View()
	if !strings.Contains(view, "no filter") {
		t.Fatalf("view should show the no filter heading:\n%s", view)
	}
	if !strings.Contains(view, "Grass, Poison") {
		t.Fatalf("view should list types joined by comma:\n%s", view)
	}

	m = send(m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	detail := m.renderDetail(40)
	for _, want := range []string{"Charmander", "HP", "39", "Sp. Defense", "Speed", "65", "no filter"} {
		if !strings.Contains(detail, want) {
			t.Fatalf("detail missing %q:\n%s", want, detail)
		}
	}
	if strings.Index(detail, "Attack") > strings.Index(detail, "Speed") {
		t.Fatalf("stats should keep document order:\n%s", detail)
	}

	m = send(m, runes("/"), runes("x"))
	if strings.Contains(m.renderDetail(40), "no filter") {
		t.Fatalf("no filter heading should hide once a filter is typed")
	}
}

func TestView_EmptyDetailWhenNothingSelectedAndFiltered(t *testing.T) {
	m := send(loaded(t), runes("/"), runes("char"))
	if got := m.renderDetail(40); got != "" {
		t.Fatalf("renderDetail = %q, want empty", got)
	}
}

func TestView_NotReadyAndHelp(t *testing.T) {
	m := newTestModel(t, nil)
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before size = %q", got)
	}
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40}, runes("?"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m = send(m, runes("x"))
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
	if !strings.Contains(m.View(), "No data yet") {
		t.Fatalf("empty roster hint not shown:\n%s", m.View())
	}
}

func TestCopyName_UsesClipboard(t *testing.T) {
	m := loaded(t)
	var copied []string
	m.copyText = func(s string) error {
		copied = append(copied, s)
		return fmt.Errorf("no clipboard")
	}

	m = send(m, runes("y"))
	if len(copied) != 0 {
		t.Fatalf("copy without selection wrote %v", copied)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("y"))
	if len(copied) != 1 || copied[0] != "Bulbasaur" {
		t.Fatalf("copied = %v, want [Bulbasaur]", copied)
	}
}

func TestCycleThemeAndBars_PersistPrefs(t *testing.T) {
	m := loaded(t)
	first := m.theme.Name

	m = send(m, runes("T"), runes("b"))
	if m.theme.Name == first {
		t.Fatalf("theme did not change from %q", first)
	}
	p := prefs.Load(m.prefsPath)
	if p.Theme != m.theme.Name || !p.StatBars {
		t.Fatalf("prefs = %#v, want theme %q with stat bars", p, m.theme.Name)
	}
}

func TestQuit(t *testing.T) {
	m := loaded(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q returned %T, want tea.QuitMsg", cmd())
	}
}
