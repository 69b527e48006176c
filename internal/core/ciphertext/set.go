// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ciphertext loads the hex-encoded messages that share one key.
package ciphertext

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/toeirei/manytime/util/slicest"
)

// ErrEmpty is returned when the input holds no ciphertext tokens.
var ErrEmpty = errors.New("no ciphertexts in input")

// InputFormatError reports a token that is not valid hexadecimal.
type InputFormatError struct {
	Index int    // zero-based position of the token in the input
	Token string // offending token, possibly shortened
	Err   error
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("invalid hexadecimal in ciphertext #%d (%q): %v", e.Index+1, e.Token, e.Err)
}

func (e *InputFormatError) Unwrap() error { return e.Err }

// Set is an ordered, immutable collection of ciphertexts. Lengths may differ.
type Set struct {
	texts [][]byte
}

// NewSet copies texts into a Set.
func NewSet(texts [][]byte) *Set {
	s := &Set{texts: make([][]byte, len(texts))}
	for i, t := range texts {
		s.texts[i] = append([]byte(nil), t...)
	}
	return s
}

// Parse reads whitespace or newline delimited hex tokens from r.
// Any bad token fails the whole parse; no partial set is returned.
func Parse(r io.Reader) (*Set, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	var texts [][]byte
	for sc.Scan() {
		tok := sc.Text()
		b, err := hex.DecodeString(tok)
		if err != nil {
			return nil, &InputFormatError{Index: len(texts), Token: shorten(tok), Err: err}
		}
		texts = append(texts, b)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ciphertexts: %w", err)
	}
	if len(texts) == 0 {
		return nil, ErrEmpty
	}
	return &Set{texts: texts}, nil
}

// ReadFile parses the file at path. A path of "-" reads stdin.
func ReadFile(path string) (*Set, error) {
	if path == "-" {
		return Parse(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ciphertext file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Len returns the number of ciphertexts.
func (s *Set) Len() int {
	return len(s.texts)
}

// At returns a copy of ciphertext i.
func (s *Set) At(i int) []byte {
	return append([]byte(nil), s.texts[i]...)
}

// LenAt returns the byte length of ciphertext i.
func (s *Set) LenAt(i int) int {
	return len(s.texts[i])
}

// ByteAt returns ciphertext i at column j.
func (s *Set) ByteAt(i, j int) byte {
	return s.texts[i][j]
}

// Texts returns copies of all ciphertexts in input order.
func (s *Set) Texts() [][]byte {
	return slicest.Map(s.texts, bytes.Clone)
}

// MaxLen returns the longest ciphertext length, or 0 for an empty set.
func (s *Set) MaxLen() int {
	n := 0
	for _, t := range s.texts {
		n = max(n, len(t))
	}
	return n
}

func shorten(tok string) string {
	const limit = 32
	if len(tok) <= limit {
		return tok
	}
	return tok[:limit] + "..."
}
