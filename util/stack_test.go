package util

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := &Stack[int]{}
	_, ok := s.Pop()
	assert.False(t, ok)
	_, ok = s.Peek()
	assert.False(t, ok)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len())

	top, _ = s.Pop()
	assert.Equal(t, 3, top)
	assert.Equal(t, []int{2, 1}, s.PopAll())
	assert.Equal(t, 0, s.Len())
}

func TestMapIter(t *testing.T) {
	doubled := slices.Collect(MapIter(slices.Values([]int{1, 2, 3}), func(i int) int { return i * 2 }))
	assert.Equal(t, []int{2, 4, 6}, doubled)
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(Reverse([]int{1, 2, 3})))
}
