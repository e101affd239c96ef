package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseSetSetGetRemove(t *testing.T) {
	cases := []struct {
		name    string
		ids     []int
		remove  []int
		wantLen int
		wantIDs []int
	}{
		{"single", []int{1}, nil, 1, []int{1}},
		{"remove_middle_swaps_last", []int{1, 2, 3}, []int{2}, 2, []int{1, 3}},
		{"remove_missing", []int{4, 9}, []int{5}, 2, []int{4, 9}},
		{"remove_all", []int{7, 3}, []int{3, 7}, 0, nil},
		{"ignores_non_positive", []int{0, -1, 2}, nil, 1, []int{2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var s SparseSet[string]
			for _, id := range c.ids {
				s.Set(id, "v")
			}
			for _, id := range c.remove {
				s.Remove(id)
			}
			assert.Equal(t, c.wantLen, s.Len())
			require.Len(t, s.Values(), len(c.wantIDs))
			for _, id := range c.wantIDs {
				v, ok := s.Get(id)
				require.True(t, ok, "id %d", id)
				assert.Equal(t, "v", v)
			}
			for _, id := range c.remove {
				assert.False(t, s.Has(id))
			}
		})
	}
}

func TestSparseSetUpdateInPlace(t *testing.T) {
	var s SparseSet[int]
	s.Set(3, 1)
	s.Set(3, 2)
	v, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, s.Len())
}

func TestSparseSetNil(t *testing.T) {
	var s *SparseSet[int]
	assert.False(t, s.Has(1))
	assert.Zero(t, s.Len())
	assert.False(t, s.Remove(1))
	assert.Nil(t, s.Values())
}
