// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui is the terminal front end of an edit session. It turns key
// presses into session events and renders the decryption rows and key; all
// key logic stays in the session package.
package tui // import "github.com/toeirei/manytime/internal/tui"

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/manytime/internal/core/session"
	"github.com/toeirei/manytime/internal/logging"
)

var errClipboardUnsupported = errors.New("clipboard not supported on this system")

// Model is the bubbletea model wrapping one session.
type Model struct {
	sess       *session.Session
	keys       keyMap
	menuKeys   menuKeyMap
	help       help.Model
	menuCursor int
	width      int
	height     int
}

// New returns a model rendering sess.
func New(sess *session.Session) Model {
	return Model{
		sess:     sess,
		keys:     newKeyMap(),
		menuKeys: newMenuKeyMap(),
		help:     help.New(),
	}
}

// Init is the first function that will be called by the Bubble Tea runtime.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update applies at most one session event per message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		ev := m.translate(msg)
		if ev == nil {
			return m, nil
		}
		if _, ok := ev.(session.MenuAction); !ok {
			m.sess.DismissNotice()
		}
		wasMenu := m.sess.Mode() == session.MenuOpen
		res := m.sess.Apply(ev)
		if len(res.Changed) > 0 {
			logging.Debugf("event %T changed columns %v", ev, res.Changed)
		}
		if !wasMenu && m.sess.Mode() == session.MenuOpen {
			m.menuCursor = 0
		}
		if m.sess.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// translate maps a key press onto the closed session event set. Menu
// navigation is view state and never reaches the session.
func (m *Model) translate(msg tea.KeyMsg) session.Event {
	if m.sess.Mode() == session.MenuOpen {
		switch {
		case key.Matches(msg, m.menuKeys.Quit):
			return session.Quit{}
		case key.Matches(msg, m.menuKeys.Close):
			return session.CloseMenu{}
		case key.Matches(msg, m.menuKeys.Up):
			m.menuCursor = (m.menuCursor - 1 + len(session.MenuActions)) % len(session.MenuActions)
		case key.Matches(msg, m.menuKeys.Down):
			m.menuCursor = (m.menuCursor + 1) % len(session.MenuActions)
		case key.Matches(msg, m.menuKeys.Select):
			return session.MenuAction{Action: session.MenuActions[m.menuCursor]}
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return session.Quit{}
	case key.Matches(msg, m.keys.Menu):
		return session.OpenMenu{}
	case key.Matches(msg, m.keys.Up):
		return session.MoveCursor{Dir: session.Up}
	case key.Matches(msg, m.keys.Down):
		return session.MoveCursor{Dir: session.Down}
	case key.Matches(msg, m.keys.Left):
		return session.MoveCursor{Dir: session.Left}
	case key.Matches(msg, m.keys.Right):
		return session.MoveCursor{Dir: session.Right}
	case key.Matches(msg, m.keys.Backspace):
		return session.Backspace{}
	case key.Matches(msg, m.keys.Delete):
		return session.Delete{}
	case key.Matches(msg, m.keys.Clear):
		return session.Clear{}
	}

	switch msg.Type {
	case tea.KeySpace:
		return session.Edit{Char: ' '}
	case tea.KeyRunes:
		// Pasted text and multi-rune input are ignored; one key, one edit.
		if len(msg.Runes) == 1 && !msg.Paste {
			return session.Edit{Char: msg.Runes[0]}
		}
	}
	return nil
}

// Session returns the wrapped session.
func (m Model) Session() *session.Session {
	return m.sess
}

// Run blocks until the user quits. When stdin is not a terminal the program
// reads keys from the controlling TTY instead.
func Run(sess *session.Session, stdinIsTTY bool) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !stdinIsTTY {
		opts = append(opts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(New(sess), opts...).Run(); err != nil {
		return fmt.Errorf("TUI run error: %w", err)
	}
	return nil
}
