// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package slicest

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	assert.Nil(t, Map([]int(nil), strconv.Itoa))
}

func TestMapI(t *testing.T) {
	got := MapI([]string{"a", "b"}, func(i int, s string) string { return strconv.Itoa(i) + s })
	assert.Equal(t, []string{"0a", "1b"}, got)
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3, 4}, func(v, acc int) int { return acc + v })
	assert.Equal(t, 10, sum)

	joined := ReduceD([]string{"b", "c"}, "a", func(v, acc string) string { return acc + v })
	assert.Equal(t, "abc", joined)
}

func TestIndexFunc(t *testing.T) {
	assert.Equal(t, 1, IndexFunc([]string{"/", "/timestamp"}, func(s string) bool { return s == "/timestamp" }))
	assert.Equal(t, -1, IndexFunc([]string{"/"}, func(s string) bool { return s == "/nope" }))
}
