// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)
	assert.Empty(t, Map([]int(nil), strconv.Itoa))
}

func TestMapI(t *testing.T) {
	got := MapI([]string{"a", "b"}, func(i int, s string) string {
		return strconv.Itoa(i) + s
	})
	assert.Equal(t, []string{"0a", "1b"}, got)
}

func TestMapX(t *testing.T) {
	got, err := MapX([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = MapX([]string{"1", "x", "3"}, strconv.Atoi)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestReduceAndCount(t *testing.T) {
	sum := Reduce([]int{1, 2, 3}, 10, func(v, acc int) int { return acc + v })
	assert.Equal(t, 16, sum)

	even := Count([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, 2, even)
	assert.Zero(t, Count([]int{}, func(int) bool { return true }))
}
