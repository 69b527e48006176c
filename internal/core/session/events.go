// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package session

// Direction is a cursor motion.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Action is an entry of the menu overlay.
type Action int

const (
	ActionExport Action = iota
	ActionCopyKey
	ActionQuit
	ActionClose
)

// MenuActions lists the menu entries in display order.
var MenuActions = []Action{ActionExport, ActionCopyKey, ActionQuit, ActionClose}

// Event is the closed set of inputs a renderer may feed into a Session.
type Event interface {
	isEvent()
}

type (
	// MoveCursor moves the focus one cell.
	MoveCursor struct{ Dir Direction }
	// Edit types a plaintext character at the cursor and advances.
	Edit struct{ Char rune }
	// Clear forgets the key byte under the cursor.
	Clear struct{}
	// Backspace forgets the key byte left of the cursor and moves onto it.
	Backspace struct{}
	// Delete forgets the key byte under the cursor and advances.
	Delete struct{}
	// OpenMenu shows the menu overlay.
	OpenMenu struct{}
	// CloseMenu hides the menu overlay.
	CloseMenu struct{}
	// MenuAction runs a menu entry.
	MenuAction struct{ Action Action }
	// Quit ends the session without saving.
	Quit struct{}
)

func (MoveCursor) isEvent() {}
func (Edit) isEvent()       {}
func (Clear) isEvent()      {}
func (Backspace) isEvent()  {}
func (Delete) isEvent()     {}
func (OpenMenu) isEvent()   {}
func (CloseMenu) isEvent()  {}
func (MenuAction) isEvent() {}
func (Quit) isEvent()       {}
