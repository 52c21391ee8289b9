package ringqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteMid(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"Single", []string{"1"}, nil},
		{"Pair", []string{"1", "2"}, []string{"1"}},
		{"Odd", []string{"1", "2", "3"}, []string{"1", "3"}},
		// even lengths lose the upper middle
		{"Even", []string{"1", "2", "3", "4"}, []string{"1", "2", "4"}},
		{"EvenSix", []string{"1", "2", "3", "4", "5", "6"}, []string{"1", "2", "3", "5", "6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := newTestQueue(t, tt.in...)
			require.True(t, q.DeleteMid())
			requireValues(t, q, tt.want...)
		})
	}
}

func TestDeleteMidEmpty(t *testing.T) {
	q, _ := newTestQueue(t)
	assert.False(t, q.DeleteMid())
	requireValues(t, q)
}

func TestDeleteDup(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"Scenario", []string{"a", "a", "b", "b", "c"}, []string{"c"}},
		{"NoDuplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"AllSame", []string{"x", "x", "x"}, nil},
		{"Single", []string{"x"}, []string{"x"}},
		{"RunInMiddle", []string{"a", "b", "b", "b", "c"}, []string{"a", "c"}},
		{"RunAtEnd", []string{"a", "b", "c", "c"}, []string{"a", "b"}},
		// runs are found only when adjacent
		{"Unsorted", []string{"a", "b", "a", "a"}, []string{"a", "b"}},
		{"PrefixIsNotEqual", []string{"ab", "abc"}, []string{"ab", "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := newTestQueue(t, tt.in...)
			require.True(t, q.DeleteDup())
			requireValues(t, q, tt.want...)
		})
	}
}

func TestDeleteDupEmpty(t *testing.T) {
	q, _ := newTestQueue(t)
	assert.False(t, q.DeleteDup())
}

func TestSwap(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{nil, nil},
		{[]string{"1"}, []string{"1"}},
		{[]string{"1", "2"}, []string{"2", "1"}},
		{[]string{"1", "2", "3"}, []string{"2", "1", "3"}},
		{[]string{"1", "2", "3", "4"}, []string{"2", "1", "4", "3"}},
	}
	for _, tt := range tests {
		q, _ := newTestQueue(t, tt.in...)
		q.Swap()
		requireValues(t, q, tt.want...)
	}
}

func TestSwapAllocatesNothing(t *testing.T) {
	q, a := newTestQueue(t, "1", "2", "3", "4")
	before := a.Stats()
	q.Swap()
	assert.Equal(t, before, a.Stats())
}

func TestReverse(t *testing.T) {
	q, _ := newTestQueue(t, "a", "b", "c", "d")

	q.Reverse()
	requireValues(t, q, "d", "c", "b", "a")

	q.Reverse()
	requireValues(t, q, "a", "b", "c", "d")
}

func TestReverseDegenerate(t *testing.T) {
	empty, _ := newTestQueue(t)
	empty.Reverse()
	requireValues(t, empty)

	single, _ := newTestQueue(t, "a")
	single.Reverse()
	requireValues(t, single, "a")
}

func TestReverseK(t *testing.T) {
	in := []string{"1", "2", "3", "4", "5"}
	tests := []struct {
		name string
		k    int
		want []string
	}{
		{"Pairs", 2, []string{"2", "1", "4", "3", "5"}},
		{"Triples", 3, []string{"3", "2", "1", "4", "5"}},
		{"Whole", 5, []string{"5", "4", "3", "2", "1"}},
		{"TooLarge", 6, in},
		{"One", 1, in},
		{"Zero", 0, in},
		{"Negative", -2, in},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := newTestQueue(t, in...)
			q.ReverseK(tt.k)
			requireValues(t, q, tt.want...)
		})
	}
}

func TestReverseKExactMultiple(t *testing.T) {
	q, _ := newTestQueue(t, "1", "2", "3", "4", "5", "6")
	q.ReverseK(3)
	requireValues(t, q, "3", "2", "1", "6", "5", "4")
}

func TestAscend(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"e", "b", "m", "c", "h"}, []string{"b", "c", "h"}},
		{[]string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{[]string{"c", "b", "a"}, []string{"a"}},
		{[]string{"b", "b", "a", "a"}, []string{"a", "a"}},
		{[]string{"x"}, []string{"x"}},
	}
	for _, tt := range tests {
		q, _ := newTestQueue(t, tt.in...)
		assert.Equal(t, len(tt.want), q.Ascend())
		requireValues(t, q, tt.want...)
	}
}

func TestDescend(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{"e", "b", "m", "c", "h"}, []string{"m", "h"}},
		{[]string{"c", "b", "a"}, []string{"c", "b", "a"}},
		{[]string{"a", "b", "c"}, []string{"c"}},
		{[]string{"a", "a", "b", "b"}, []string{"b", "b"}},
		{[]string{"x"}, []string{"x"}},
	}
	for _, tt := range tests {
		q, _ := newTestQueue(t, tt.in...)
		assert.Equal(t, len(tt.want), q.Descend())
		requireValues(t, q, tt.want...)
	}
}

func TestMonotonicEmpty(t *testing.T) {
	q, _ := newTestQueue(t)
	assert.Zero(t, q.Ascend())
	assert.Zero(t, q.Descend())
}
