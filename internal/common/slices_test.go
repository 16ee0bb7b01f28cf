package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestTake(t *testing.T) {
	src := []int{1, 2, 3}

	got, cut := Take(src, 2)
	assert.True(t, cut)
	assert.Equal(t, []int{1, 2}, got)

	got[0] = 99
	assert.Equal(t, 1, src[0], "Take must not alias its input")

	got, cut = Take(src, 5)
	assert.False(t, cut)
	assert.Equal(t, src, got)

	got, cut = Take(src, -1)
	assert.True(t, cut)
	assert.Empty(t, got)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.False(t, IsMultiple([]int{1}))
	assert.True(t, IsMultiple([]int{1, 2}))
}

func TestMap(t *testing.T) {
	assert.Nil(t, Map([]int(nil), func(i int) int { return i }))
	assert.Equal(t, []int{2, 4}, Map([]int{1, 2}, func(i int) int { return i * 2 }))
}
