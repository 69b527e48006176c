// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers.
//
// Suffix conventions:
//   - I: the callback also receives the index.
//   - X: the callback may fail; the first error stops the walk.
package slicest

// Map returns fn applied to every element of s.
func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U { return fn(t) })
}

// MapI is Map with the element index.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	out := make([]U, len(s))
	for i, t := range s {
		out[i] = fn(i, t)
	}
	return out
}

// MapX is Map with error propagation.
func MapX[T, U any, S ~[]T](s S, fn func(T) (U, error)) ([]U, error) {
	out := make([]U, 0, len(s))
	for _, t := range s {
		u, err := fn(t)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// Reduce folds s into acc, starting from init.
func Reduce[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// Count returns how many elements satisfy pred.
func Count[T any, S ~[]T](s S, pred func(T) bool) int {
	return Reduce(s, 0, func(t T, n int) int {
		if pred(t) {
			n++
		}
		return n
	})
}
