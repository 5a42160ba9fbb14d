package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2018/checksum"
)

var inventory = []string{
	"abcdef",
	"bababc",
	"abbcde",
	"abcccd",
	"aabcdd",
	"abcdee",
	"ababab",
}

func TestLetterProfile(t *testing.T) {
	tests := []struct {
		id   string
		want checksum.Count2And3
	}{
		{"abcdef", checksum.Count2And3{Twos: 0, Threes: 0}},
		{"bababc", checksum.Count2And3{Twos: 1, Threes: 1}},
		{"abbcde", checksum.Count2And3{Twos: 1, Threes: 0}},
		{"abcccd", checksum.Count2And3{Twos: 0, Threes: 1}},
		{"aabcdd", checksum.Count2And3{Twos: 1, Threes: 0}},
		{"abcdee", checksum.Count2And3{Twos: 1, Threes: 0}},
		{"ababab", checksum.Count2And3{Twos: 0, Threes: 1}},
		{"", checksum.Count2And3{}},
		{"aaaa", checksum.Count2And3{}},
	}
	for _, tc := range tests {
		got, err := checksum.LetterProfile(tc.id)
		require.NoError(t, err, tc.id)
		assert.Equal(t, tc.want, got, tc.id)
	}
}

// TestLetterProfile_NotLowercase checks every class of out-of-range rune.
func TestLetterProfile_NotLowercase(t *testing.T) {
	for _, id := range []string{"abC", "ab1", "a b", "abé", "ab\n"} {
		_, err := checksum.LetterProfile(id)
		assert.ErrorIs(t, err, checksum.ErrNotLowercase, "id %q", id)
	}
}

func TestTally(t *testing.T) {
	p, err := checksum.Tally("bababc")
	require.NoError(t, err)
	assert.Equal(t, 2, p['a'-'a'])
	assert.Equal(t, 3, p['b'-'a'])
	assert.Equal(t, 1, p['c'-'a'])
	assert.Equal(t, 0, p['z'-'a'])
}

func TestCount(t *testing.T) {
	got, err := checksum.Count(inventory)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Twos)
	assert.Equal(t, 3, got.Threes)
}

func TestChecksum(t *testing.T) {
	got, err := checksum.Checksum(inventory)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

// TestChecksum_OrderIndependent reverses the list; the sum is commutative.
func TestChecksum_OrderIndependent(t *testing.T) {
	reversed := make([]string, len(inventory))
	for i, id := range inventory {
		reversed[len(inventory)-1-i] = id
	}
	got, err := checksum.Checksum(reversed)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestChecksum_Empty(t *testing.T) {
	got, err := checksum.Checksum(nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestChecksum_InvalidID(t *testing.T) {
	_, err := checksum.Checksum([]string{"abcdef", "ABCDEF"})
	assert.ErrorIs(t, err, checksum.ErrNotLowercase)
}
