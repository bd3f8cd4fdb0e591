package bits_test

import (
	"testing"

	"github.com/rhash/robintable/internal/bits"
	"github.com/stretchr/testify/assert"
)

func TestSplitRangeContiguous(t *testing.T) {
	got := bits.SplitRange(2, 3, 8)
	assert.Equal(t, []bits.Range{{Start: 2, Count: 3}}, got)
}

func TestSplitRangeWraps(t *testing.T) {
	got := bits.SplitRange(6, 4, 8)
	assert.Equal(t, []bits.Range{{Start: 6, Count: 2}, {Start: 0, Count: 2}}, got)
}

func TestSplitRangeStartsAtZero(t *testing.T) {
	got := bits.SplitRange(0, 5, 8)
	assert.Equal(t, []bits.Range{{Start: 0, Count: 5}}, got)
}

func TestSplitRangeEmpty(t *testing.T) {
	assert.Nil(t, bits.SplitRange(3, 0, 8))
}

func TestSplitRangeExactlyToEnd(t *testing.T) {
	got := bits.SplitRange(5, 3, 8)
	assert.Equal(t, []bits.Range{{Start: 5, Count: 3}}, got)
}
