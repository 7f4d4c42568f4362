package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	assert.Equal(t, 48, Cards())
}

func TestLawCount(t *testing.T) {
	n, ok := LawCount(1)
	require.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok = LawCount(40)
	require.True(t, ok)
	assert.Equal(t, 9, n)

	n, ok = LawCount(48)
	require.True(t, ok)
	assert.Equal(t, 9, n)

	_, ok = LawCount(0)
	assert.False(t, ok)
	_, ok = LawCount(49)
	assert.False(t, ok)
}

func TestLawCountRange(t *testing.T) {
	total := 0
	for c := 1; c <= Cards(); c++ {
		n, ok := LawCount(c)
		require.True(t, ok, "criteria %d", c)
		assert.GreaterOrEqual(t, n, 2, "criteria %d", c)
		assert.LessOrEqual(t, n, 9, "criteria %d", c)
		total += n
	}
	assert.Equal(t, total, TotalLawRows(seq(1, Cards())))
}

func TestTotalLawRows(t *testing.T) {
	assert.Equal(t, 0, TotalLawRows(nil))
	assert.Equal(t, 11, TotalLawRows([]int{1, 40}))
	assert.Equal(t, 2, TotalLawRows([]int{1, 999}), "unknown criterias contribute nothing")
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
