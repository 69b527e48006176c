// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Package decrypt derives display rows from the shared key.
package decrypt

import (
	"unicode"

	"github.com/toeirei/manytime/internal/core/key"
)

// DefaultMarker stands in for plaintext under an unknown key slot.
const DefaultMarker = '_'

// Decrypt returns one rune per ciphertext byte. A wrong key byte still gives
// a well-defined (if garbled) rune.
func Decrypt(k *key.Key, ct []byte, marker rune) []rune {
	out := make([]rune, len(ct))
	for i := range ct {
		out[i] = At(k, ct, i, marker)
	}
	return out
}

// At decrypts column i of ct alone.
func At(k *key.Key, ct []byte, i int, marker rune) rune {
	return Cell(k.At(i), ct[i], marker)
}

// Cell decrypts one ciphertext byte under one key slot.
func Cell(s key.Slot, c byte, marker rune) rune {
	b, ok := s.Byte()
	if !ok {
		return marker
	}
	return rune(b ^ c)
}

// String is Decrypt joined into a string.
func String(k *key.Key, ct []byte, marker rune) string {
	return string(Decrypt(k, ct, marker))
}

// Printable swaps control characters for a visible placeholder so a wrong
// guess cannot move the terminal cursor.
func Printable(r rune) rune {
	if unicode.IsControl(r) {
		return '·'
	}
	return r
}
