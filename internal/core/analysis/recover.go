// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Package analysis recovers as much of a reused XOR key as the space
// heuristic allows. Everything here is pure: inputs are never modified and
// the same input always produces the same key.
package analysis

import (
	"context"
	"fmt"
	"slices"

	"github.com/toeirei/manytime/internal/core/key"
)

// RecoverPartial analyses texts aligned at offset 0 and returns a key segment
// as long as the shortest text. Column j is resolved from candidate m only
// when XOR(m, n)[j] is space-like for every other text n; a single
// dissenting partner leaves the column unknown.
func RecoverPartial(texts [][]byte) *key.Key {
	k, _ := recoverPartial(context.Background(), texts)
	return k
}

func recoverPartial(ctx context.Context, texts [][]byte) (*key.Key, error) {
	if len(texts) == 0 {
		return key.New(0), nil
	}
	shortest := len(texts[0])
	for _, t := range texts[1:] {
		shortest = min(shortest, len(t))
	}
	segment := key.New(shortest)
	if len(texts) < 2 {
		return segment, nil
	}

	partners := len(texts) - 1
	counts := make([]int, shortest)
	for mi, m := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		clear(counts)
		for ni, n := range texts {
			if mi == ni {
				continue
			}
			for j, b := range XOR(m, n) {
				if j < shortest && IsSpaceLike(b) {
					counts[j]++
				}
			}
		}
		for j, c := range counts {
			if c == partners {
				// j < shortest, so Set cannot fail.
				_ = segment.Set(j, key.Known(space^m[j]))
			}
		}
	}
	return segment, nil
}

// Recover stitches partial keys together so columns past the shortest text
// still get analysed. Each round drops the shortest remaining text and
// left-truncates the rest by its length. The result always spans the
// longest text; fewer than two texts give an all-unknown key.
func Recover(texts [][]byte) *key.Key {
	k, _ := RecoverContext(context.Background(), texts)
	return k
}

// RecoverContext is Recover with cancellation checked between candidates.
func RecoverContext(ctx context.Context, texts [][]byte) (*key.Key, error) {
	longest := 0
	working := make([][]byte, len(texts))
	for i, t := range texts {
		working[i] = t
		longest = max(longest, len(t))
	}
	slices.SortStableFunc(working, func(a, b []byte) int {
		return len(a) - len(b)
	})

	slots := make([]key.Slot, 0, longest)
	for len(working) > 1 {
		segment, err := recoverPartial(ctx, working)
		if err != nil {
			return nil, fmt.Errorf("key recovery interrupted at offset %d: %w", len(slots), err)
		}
		slots = append(slots, segment.Slots()...)

		dropped := len(working[0])
		working = working[1:]
		for i := range working {
			working[i] = working[i][dropped:]
		}
	}

	for len(slots) < longest {
		slots = append(slots, key.Unknown())
	}
	return key.FromSlots(slots), nil
}
