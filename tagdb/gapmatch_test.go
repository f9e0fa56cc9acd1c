package tagdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func units(s string) []uint16 {
	out := make([]uint16, len(s))
	for i, c := range []byte(s) {
		out[i] = uint16(c)
	}
	return out
}

func TestGapMatchIdentity(t *testing.T) {
	assert.Equal(t, 0, GapMatch(units("cat"), units("cat")))
}

func TestGapMatchEmptySmall(t *testing.T) {
	assert.Equal(t, 0, GapMatch(units(""), units("anything")))
}

func TestGapMatchPrefix(t *testing.T) {
	assert.Equal(t, 0, GapMatch(units("ca"), units("catalog")))
}

func TestGapMatchSuffix(t *testing.T) {
	assert.Equal(t, 0, GapMatch(units("log"), units("catalog")))
}

func TestGapMatchSingleGap(t *testing.T) {
	// "ct" inside "cat": one contiguous run can't cover it (c then t with a
	// gap), so it takes two runs, and "ct" is neither prefix nor suffix of
	// "cat", so the 0 fast path does not apply: the cost is positive.
	got := GapMatch(units("ct"), units("cat"))
	assert.Greater(t, got, 0)
}

func TestGapMatchOverLengthRejected(t *testing.T) {
	big := make([]uint16, MaxWordLen+1)
	for i := range big {
		big[i] = 'x'
	}
	small := units("abcdefghijklmnopqrstuvwxyz_abcdefghijklmnopqrstuvwxyz_1234")
	got := GapMatch(small, big)
	assert.Equal(t, gapInf, got)
}

func TestGapMatchOrdering(t *testing.T) {
	// "ca" is a prefix of "cat" (cost 0); "ta" isn't even a subsequence of
	// "cat" (t comes after a), so it never reaches a finished DP state.
	assert.Less(t, GapMatch(units("ca"), units("cat")), GapMatch(units("ta"), units("cat")))
}
