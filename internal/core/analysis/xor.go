// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package analysis

// space is the plaintext byte the recovery heuristic hunts for.
const space = 0x20

// XOR returns the XOR combination of two buffers, truncated to the shorter one.
func XOR(b1, b2 []byte) []byte {
	n := min(len(b1), len(b2))
	res := make([]byte, n)
	for i := 0; i < n; i++ {
		res[i] = b1[i] ^ b2[i]
	}
	return res
}

// IsSpaceLike reports whether b could be the XOR of a space with a letter
// (which yields a letter, since they differ only in the case bit) or of two
// equal bytes (which yields zero).
func IsSpaceLike(b byte) bool {
	return b == 0 || ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
}
