package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleRune(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want rune
		ok   bool
	}{
		{"ascii", "a", 'a', true},
		{"digit", "7", '7', true},
		{"cjk", "字", '字', true},
		{"emoji", "😀", '😀', true},
		{"empty", "", 0, false},
		{"two ascii", "ab", 0, false},
		{"ascii then cjk", "a字", 0, false},
		{"invalid utf8", "\xff", 0, false},
		{"combining sequence", "e\u0301", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SingleRune(tt.in)
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsSingle([]int{}))
	assert.True(t, IsSingle([]int{1}))
	assert.True(t, IsMultiple([]int{1, 2}))

	first, ok := First([]string{"x", "y"})
	assert.True(t, ok)
	assert.Equal(t, "x", first)

	_, ok = First([]string{})
	assert.False(t, ok)

	assert.Equal(t, []int{2, 4}, Map([]int{1, 2}, func(i int) int { return i * 2 }))
}
