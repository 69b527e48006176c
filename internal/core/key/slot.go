// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package key

// Slot is one byte position of the shared key. A slot is either Known,
// carrying the key byte, or Unknown. The zero value is Unknown.
type Slot struct {
	known bool
	b     byte
}

// Known returns a resolved slot holding b.
func Known(b byte) Slot {
	return Slot{known: true, b: b}
}

// Unknown returns an unresolved slot.
func Unknown() Slot {
	return Slot{}
}

// IsKnown reports whether the slot holds a key byte.
func (s Slot) IsKnown() bool {
	return s.known
}

// Byte returns the key byte and whether the slot is known.
// The byte is meaningless when ok is false.
func (s Slot) Byte() (b byte, ok bool) {
	return s.b, s.known
}
