// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/manytime/internal/core/analysis"
	"github.com/toeirei/manytime/internal/core/ciphertext"
	"github.com/toeirei/manytime/internal/core/key"
	"github.com/toeirei/manytime/internal/core/session"
	"github.com/toeirei/manytime/internal/i18n"
)

type stubClipboard struct{ text string }

func (s *stubClipboard) WriteAll(text string) error {
	s.text = text
	return nil
}

type failingExporter struct{}

func (failingExporter) Export(*ciphertext.Set, *key.Key, string) error {
	return errors.New("permission denied")
}

func newTestModel(t *testing.T, opts ...session.Option) Model {
	t.Helper()
	i18n.Init("en")
	set, err := ciphertext.Parse(strings.NewReader("404321\n424521\n444721\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	sess, err := session.New(set, analysis.Recover(set.Texts()), opts...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return New(sess)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_TypingEditsEveryRow(t *testing.T) {
	m, _ := press(t, newTestModel(t), runes("A"))

	sess := m.Session()
	if got := sess.Key().String(); got != "01__01" {
		t.Fatalf("expected key 01__01, got %q", got)
	}
	want := []string{"A_ ", "C_ ", "E_ "}
	for i, w := range want {
		if got := string(sess.Row(i)); got != w {
			t.Fatalf("row %d: expected %q, got %q", i, w, got)
		}
	}
	if c := sess.Cursor(); c.Column != 1 {
		t.Fatalf("expected cursor to advance to column 1, got %+v", c)
	}

	view := ansi.Strip(m.View())
	for _, s := range []string{"Decryptions", "Key", "01__01", "1   A_ ", "3   E_ ", "2/3 key bytes known"} {
		if !strings.Contains(view, s) {
			t.Fatalf("view missing %q:\n%s", s, view)
		}
	}
}

func TestUpdate_SpaceIsAnEdit(t *testing.T) {
	m, _ := press(t, newTestModel(t), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := m.Session().Key().String(); got != "60__01" {
		t.Fatalf("expected key 60__01, got %q", got)
	}
}

func TestUpdate_NavigationAndBackspace(t *testing.T) {
	m, _ := press(t, newTestModel(t),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight},
		runes("D"),
	)
	sess := m.Session()
	if got := sess.Key().String(); got != "__0101" {
		t.Fatalf("expected key __0101, got %q", got)
	}
	if got := string(sess.Row(0)); got != "_B " {
		t.Fatalf("row 0 should follow the shared key, got %q", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Session().Key().String(); got != "____01" {
		t.Fatalf("expected backspace to clear column 1, got %q", got)
	}
	if c := m.Session().Cursor(); c.Row != 1 || c.Column != 1 {
		t.Fatalf("unexpected cursor after backspace: %+v", c)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	if c := m.Session().Cursor(); c.Row != 2 {
		t.Fatalf("expected row to wrap to 2, got %+v", c)
	}
}

func TestUpdate_ClearAndDelete(t *testing.T) {
	m, _ := press(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.Session().Key().String(); got != "______" {
		t.Fatalf("expected clear to forget column 2, got %q", got)
	}

	m, _ = press(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.Session().Key().String(); got != "______" {
		t.Fatalf("expected delete to forget column 2, got %q", got)
	}
}

func TestUpdate_MenuCopyKey(t *testing.T) {
	cb := &stubClipboard{}
	m, _ := press(t, newTestModel(t, session.WithClipboard(cb)), tea.KeyMsg{Type: tea.KeyEsc})
	if m.Session().Mode() != session.MenuOpen {
		t.Fatalf("expected esc to open the menu")
	}
	view := ansi.Strip(m.View())
	for _, s := range []string{"Menu", "Export", "Copy key", "Quit", "Close"} {
		if !strings.Contains(view, s) {
			t.Fatalf("menu view missing %q:\n%s", s, view)
		}
	}

	// Letters do not edit while the menu is open.
	m, _ = press(t, m, runes("A"))
	if got := m.Session().Key().String(); got != "____01" {
		t.Fatalf("menu must not edit the key, got %q", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if cb.text != "____01" {
		t.Fatalf("expected key on clipboard, got %q", cb.text)
	}
	if m.Session().Mode() != session.Editing {
		t.Fatalf("expected menu to close after an action")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Key copied to clipboard") {
		t.Fatalf("expected copy notice in view:\n%s", view)
	}

	// The notice goes away with the next key press.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Session().Notice().Kind != session.NoticeNone {
		t.Fatalf("expected notice to be dismissed")
	}
}

func TestUpdate_MenuExportFailureIsShown(t *testing.T) {
	m, cmd := press(t, newTestModel(t, session.WithExporter(failingExporter{}, "out.json")),
		tea.KeyMsg{Type: tea.KeyEsc},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if cmd != nil {
		t.Fatalf("failed export must not quit")
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Export failed: permission denied") {
		t.Fatalf("expected failure notice in view:\n%s", view)
	}
}

func TestUpdate_MenuCloseAndWrap(t *testing.T) {
	m, _ := press(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyUp})
	if m.menuCursor != len(session.MenuActions)-1 {
		t.Fatalf("expected menu cursor to wrap to the last entry, got %d", m.menuCursor)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Session().Mode() != session.Editing {
		t.Fatalf("expected esc to close the menu")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.menuCursor != 0 {
		t.Fatalf("expected menu cursor reset on open, got %d", m.menuCursor)
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	_, cmd := press(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestUpdate_MenuQuit(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	// Export, Copy key, Quit.
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit from the menu")
	}
}

func TestView_WindowFollowsCursor(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	if offset, visible := m.window(4); offset != 0 || visible != 70 {
		t.Fatalf("unexpected window: offset=%d visible=%d", offset, visible)
	}
	if !strings.Contains(ansi.Strip(m.View()), "row 1, column 1") {
		t.Fatalf("expected cursor position in status line")
	}
}

func TestAlignFooter(t *testing.T) {
	if got := AlignFooter("a", "b", 5); got != "a   b" {
		t.Fatalf("unexpected footer %q", got)
	}
	if got := AlignFooter("left", "right", 3); got != "left right" {
		t.Fatalf("expected single space fallback, got %q", got)
	}
}
