// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Package key holds the single shared key that every decryption row is
// derived from. The key has a fixed length; only slot contents change.
package key

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/toeirei/manytime/util/slicest"
)

// DefaultPlaceholder is rendered twice for every unknown slot so that the
// textual key lines up with the two-hex-digit encoding of known bytes.
const DefaultPlaceholder = '_'

// ErrIndexOutOfRange is matched by every *IndexOutOfRangeError.
var ErrIndexOutOfRange = errors.New("key index out of range")

// IndexOutOfRangeError reports an access outside the key.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("key index %d out of range [0,%d)", e.Index, e.Len)
}

// Is lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Key is an ordered, fixed-length sequence of slots.
type Key struct {
	slots []Slot
}

// New returns a key of n unknown slots.
func New(n int) *Key {
	if n < 0 {
		n = 0
	}
	return &Key{slots: make([]Slot, n)}
}

// FromSlots builds a key from a copy of slots.
func FromSlots(slots []Slot) *Key {
	k := &Key{slots: make([]Slot, len(slots))}
	copy(k.slots, slots)
	return k
}

// Len returns the number of slots. It never changes after creation.
func (k *Key) Len() int {
	return len(k.slots)
}

// Get returns the slot at i.
func (k *Key) Get(i int) (Slot, error) {
	if i < 0 || i >= len(k.slots) {
		return Slot{}, &IndexOutOfRangeError{Index: i, Len: len(k.slots)}
	}
	return k.slots[i], nil
}

// At returns the slot at i, or Unknown when i is outside the key.
func (k *Key) At(i int) Slot {
	if i < 0 || i >= len(k.slots) {
		return Unknown()
	}
	return k.slots[i]
}

// Set replaces the slot at i. It never grows the key.
func (k *Key) Set(i int, s Slot) error {
	if i < 0 || i >= len(k.slots) {
		return &IndexOutOfRangeError{Index: i, Len: len(k.slots)}
	}
	k.slots[i] = s
	return nil
}

// All iterates over index/slot pairs in order.
func (k *Key) All() iter.Seq2[int, Slot] {
	return func(yield func(int, Slot) bool) {
		for i, s := range k.slots {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Slots returns a copy of the slots.
func (k *Key) Slots() []Slot {
	out := make([]Slot, len(k.slots))
	copy(out, k.slots)
	return out
}

// KnownCount returns how many slots are resolved.
func (k *Key) KnownCount() int {
	return slicest.Count(k.slots, Slot.IsKnown)
}

// String returns the plain rendering with the default placeholder.
func (k *Key) String() string {
	return k.PlainWith(DefaultPlaceholder)
}

// PlainWith renders known bytes as two lowercase hex digits and unknown
// slots as two placeholder runes.
func (k *Key) PlainWith(placeholder rune) string {
	unknown := strings.Repeat(string(placeholder), 2)
	return k.Highlight(func(cell string, known bool) string {
		if known {
			return cell
		}
		return unknown
	})
}

// Highlight renders every slot through fn. Known slots are passed as their
// two hex digits; unknown slots as two default placeholders. The caller
// decides how each cell is decorated.
func (k *Key) Highlight(fn func(cell string, known bool) string) string {
	var sb strings.Builder
	sb.Grow(2 * len(k.slots))
	unknown := strings.Repeat(string(DefaultPlaceholder), 2)
	for _, s := range k.slots {
		if s.known {
			sb.WriteString(fn(fmt.Sprintf("%02x", s.b), true))
			continue
		}
		sb.WriteString(fn(unknown, false))
	}
	return sb.String()
}
