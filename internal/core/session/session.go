// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Package session is the edit controller between a renderer and the shared
// key. Every edit goes through the key, so one change at column j shows up
// in every row long enough to have a column j.
package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/toeirei/manytime/internal/core/ciphertext"
	"github.com/toeirei/manytime/internal/core/decrypt"
	"github.com/toeirei/manytime/internal/core/key"
	"github.com/toeirei/manytime/internal/logging"
	"github.com/toeirei/manytime/util/slicest"
)

// ErrNoExporter is reported when Export is requested without an Exporter.
var ErrNoExporter = errors.New("no exporter configured")

// ErrNoClipboard is reported when CopyKey is requested without a Clipboard.
var ErrNoClipboard = errors.New("no clipboard available")

// Mode is the coarse session state.
type Mode int

const (
	Editing Mode = iota
	MenuOpen
)

// Cursor identifies the focused ciphertext row and byte column.
type Cursor struct {
	Row    int
	Column int
}

// Exporter persists the session state.
type Exporter interface {
	Export(set *ciphertext.Set, k *key.Key, path string) error
}

// Clipboard receives the plain key text.
type Clipboard interface {
	WriteAll(text string) error
}

// NoticeKind classifies the last status message.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeExported
	NoticeExportFailed
	NoticeCopied
	NoticeCopyFailed
)

// Notice is a transient status message for the renderer to show.
type Notice struct {
	Kind NoticeKind
	Path string
	Err  error
}

// Result tells the renderer which key columns were recomputed.
type Result struct {
	Changed []int
}

// Option configures a Session.
type Option func(*Session)

// WithExporter sets the exporter and its destination path.
func WithExporter(e Exporter, path string) Option {
	return func(s *Session) {
		s.exporter = e
		s.output = path
	}
}

// WithClipboard sets the clipboard used by the copy-key menu entry.
func WithClipboard(c Clipboard) Option {
	return func(s *Session) { s.clipboard = c }
}

// WithMarker sets the rune shown for unknown plaintext.
func WithMarker(r rune) Option {
	return func(s *Session) { s.marker = r }
}

// Session owns the key and cursor for one interactive run.
type Session struct {
	set       *ciphertext.Set
	key       *key.Key
	cursor    Cursor
	mode      Mode
	rows      [][]rune
	marker    rune
	exporter  Exporter
	output    string
	clipboard Clipboard
	notice    Notice
	done      bool
}

// New starts a session over set, editing k in place. The key must cover the
// longest ciphertext.
func New(set *ciphertext.Set, k *key.Key, opts ...Option) (*Session, error) {
	if k.Len() < set.MaxLen() {
		return nil, fmt.Errorf("key length %d shorter than longest ciphertext %d", k.Len(), set.MaxLen())
	}
	s := &Session{
		set:    set,
		key:    k,
		marker: decrypt.DefaultMarker,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rows = slicest.Map(set.Texts(), func(ct []byte) []rune {
		return decrypt.Decrypt(k, ct, s.marker)
	})
	return s, nil
}

// Apply runs one event. While the menu is open only menu events and Quit
// are honoured.
func (s *Session) Apply(ev Event) Result {
	if s.mode == MenuOpen {
		switch ev := ev.(type) {
		case CloseMenu:
			s.CloseMenu()
		case MenuAction:
			return s.runAction(ev.Action)
		case Quit:
			s.done = true
		}
		return Result{}
	}

	switch ev := ev.(type) {
	case MoveCursor:
		s.MoveCursor(ev.Dir)
	case Edit:
		col := s.cursor.Column
		if s.SetCharacter(ev.Char) {
			s.advance()
			return Result{Changed: []int{col}}
		}
	case Clear:
		if s.ClearCharacter() {
			return Result{Changed: []int{s.cursor.Column}}
		}
	case Backspace:
		col := s.cursor.Column - 1
		if s.Backspace() {
			return Result{Changed: []int{col}}
		}
	case Delete:
		col := s.cursor.Column
		if s.ClearCharacter() {
			s.advance()
			return Result{Changed: []int{col}}
		}
	case OpenMenu:
		s.OpenMenu()
	case Quit:
		s.done = true
	}
	return Result{}
}

func (s *Session) runAction(a Action) Result {
	switch a {
	case ActionExport:
		_ = s.Export()
	case ActionCopyKey:
		_ = s.CopyKey()
	case ActionQuit:
		s.done = true
	}
	s.CloseMenu()
	return Result{}
}

func (s *Session) rowLen() int {
	if s.set.Len() == 0 {
		return 0
	}
	return s.set.LenAt(s.cursor.Row)
}

// MoveCursor moves the focus, wrapping at row and column boundaries. A row
// change clamps the column to the new row.
func (s *Session) MoveCursor(dir Direction) {
	rows := s.set.Len()
	if rows == 0 {
		return
	}
	switch dir {
	case Left:
		s.cursor.Column--
		if s.cursor.Column < 0 {
			s.cursor.Column = max(s.rowLen()-1, 0)
		}
	case Right:
		s.cursor.Column++
		if s.cursor.Column >= s.rowLen() {
			s.cursor.Column = 0
		}
	case Up:
		s.cursor.Row = (s.cursor.Row - 1 + rows) % rows
		s.clampColumn()
	case Down:
		s.cursor.Row = (s.cursor.Row + 1) % rows
		s.clampColumn()
	}
}

func (s *Session) clampColumn() {
	s.cursor.Column = max(min(s.cursor.Column, s.rowLen()-1), 0)
}

// advance moves right without wrapping; typing at the last column stays put.
func (s *Session) advance() {
	if s.cursor.Column+1 < s.rowLen() {
		s.cursor.Column++
	}
}

// SetCharacter resolves the key byte under the cursor so that the focused row
// shows r. It is a no-op, returning false, when the cursor is past the end of
// the row or r does not fit in a byte.
func (s *Session) SetCharacter(r rune) bool {
	col := s.cursor.Column
	if col >= s.rowLen() || r < 0 || r > 0xff {
		return false
	}
	b := byte(r) ^ s.set.ByteAt(s.cursor.Row, col)
	if err := s.key.Set(col, key.Known(b)); err != nil {
		logging.Warnf("set key byte: %v", err)
		return false
	}
	s.refresh(col)
	return true
}

// ClearCharacter forgets the key byte under the cursor.
func (s *Session) ClearCharacter() bool {
	return s.clearAt(s.cursor.Column)
}

// Backspace forgets the key byte left of the cursor and moves onto it.
func (s *Session) Backspace() bool {
	col := s.cursor.Column - 1
	if col < 0 {
		return false
	}
	if !s.clearAt(col) {
		return false
	}
	s.cursor.Column = col
	return true
}

func (s *Session) clearAt(col int) bool {
	if col < 0 || col >= s.rowLen() {
		return false
	}
	if err := s.key.Set(col, key.Unknown()); err != nil {
		logging.Warnf("clear key byte: %v", err)
		return false
	}
	s.refresh(col)
	return true
}

// refresh recomputes column col in every row that covers it.
func (s *Session) refresh(col int) {
	slot := s.key.At(col)
	for i, row := range s.rows {
		if col < len(row) {
			row[col] = decrypt.Cell(slot, s.set.ByteAt(i, col), s.marker)
		}
	}
}

// OpenMenu shows the menu overlay.
func (s *Session) OpenMenu() {
	s.mode = MenuOpen
}

// CloseMenu returns to editing.
func (s *Session) CloseMenu() {
	s.mode = Editing
}

// Export hands the current state to the exporter. Failure is recorded as a
// notice and returned; the session stays usable either way.
func (s *Session) Export() error {
	defer s.CloseMenu()
	if s.exporter == nil {
		s.notice = Notice{Kind: NoticeExportFailed, Err: ErrNoExporter}
		return ErrNoExporter
	}
	if err := s.exporter.Export(s.set, s.key, s.output); err != nil {
		logging.Warnf("export failed: %v", err)
		s.notice = Notice{Kind: NoticeExportFailed, Path: s.output, Err: err}
		return err
	}
	s.notice = Notice{Kind: NoticeExported, Path: s.output}
	return nil
}

// CopyKey puts the plain key text on the clipboard.
func (s *Session) CopyKey() error {
	if s.clipboard == nil {
		s.notice = Notice{Kind: NoticeCopyFailed, Err: ErrNoClipboard}
		return ErrNoClipboard
	}
	if err := s.clipboard.WriteAll(s.key.String()); err != nil {
		logging.Warnf("copy key: %v", err)
		s.notice = Notice{Kind: NoticeCopyFailed, Err: err}
		return err
	}
	s.notice = Notice{Kind: NoticeCopied}
	return nil
}

// Cursor returns the focused cell.
func (s *Session) Cursor() Cursor { return s.cursor }

// Mode returns the current state.
func (s *Session) Mode() Mode { return s.mode }

// Done reports whether Quit was requested.
func (s *Session) Done() bool { return s.done }

// Notice returns the last status message.
func (s *Session) Notice() Notice { return s.notice }

// DismissNotice clears the status message.
func (s *Session) DismissNotice() { s.notice = Notice{} }

// Key returns the shared key.
func (s *Session) Key() *key.Key { return s.key }

// Ciphertexts returns the loaded set.
func (s *Session) Ciphertexts() *ciphertext.Set { return s.set }

// Len returns the number of rows.
func (s *Session) Len() int { return len(s.rows) }

// Row returns a copy of decrypted row i.
func (s *Session) Row(i int) []rune {
	return slices.Clone(s.rows[i])
}

// Rows returns copies of all decrypted rows.
func (s *Session) Rows() [][]rune {
	return slicest.Map(s.rows, slices.Clone[[]rune])
}

// Known reports whether the key byte at col is resolved.
func (s *Session) Known(col int) bool {
	return s.key.At(col).IsKnown()
}
