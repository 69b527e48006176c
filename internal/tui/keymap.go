// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/manytime/internal/i18n"
)

// keyMap holds the bindings of the editing view. Any other printable key is
// an edit.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Clear     key.Binding
	Menu      key.Binding
	Quit      key.Binding
}

// menuKeyMap holds the bindings of the menu overlay.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
	Quit   key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Backspace, km.Clear, km.Menu, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down, km.Left, km.Right}, {km.Backspace, km.Delete, km.Clear}, {km.Menu, km.Quit}}
}

func (km menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Select, km.Close}
}

func (km menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp(), {km.Quit}}
}

var (
	_ help.KeyMap = keyMap{}
	_ help.KeyMap = menuKeyMap{}
)

// newKeyMap builds the bindings with help text in the active language.
func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑↓←→", i18n.T("help.move")),
		),
		Down:  key.NewBinding(key.WithKeys("down")),
		Left:  key.NewBinding(key.WithKeys("left")),
		Right: key.NewBinding(key.WithKeys("right")),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", i18n.T("help.backspace")),
		),
		Delete: key.NewBinding(key.WithKeys("delete")),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", i18n.T("help.clear")),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("help.menu")),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T("help.quit")),
		),
	}
}

func newMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", i18n.T("help.move")),
		),
		Down: key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("help.select")),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("help.close")),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", i18n.T("help.quit")),
		),
	}
}
