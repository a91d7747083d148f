package sha1circuit

import (
	"crypto/sha1"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// padSingleBlock pads msg, which must be short enough to fit in one
// 512-bit SHA-1 block including its length suffix, per FIPS 180-4,
// and splits the result into 16 big-endian 32-bit words.
func padSingleBlock(t *testing.T, msg []byte) [16]uint32 {
	t.Helper()
	require.LessOrEqual(t, len(msg), 55, "message must leave room for 0x80 + length in one block")

	block := make([]byte, 64)
	n := copy(block, msg)
	block[n] = 0x80
	binary.BigEndian.PutUint64(block[56:], uint64(len(msg))*8)

	var words [16]uint32
	for i := range words {
		words[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	return words
}

func TestReferenceMatchesStandardLibraryAt80Rounds(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("abc"),
		[]byte("the quick brown fox"),
		[]byte("sha1-sat reduced round attack generator"),
	}

	for _, msg := range cases {
		words := padSingleBlock(t, msg)

		var w [80]uint32
		copy(w[:16], words[:])

		got := Reference(MaxRounds, &w)

		want := sha1.Sum(msg)
		var wantWords [5]uint32
		for i := range wantWords {
			wantWords[i] = binary.BigEndian.Uint32(want[i*4:])
		}

		assert.Equal(t, wantWords, got, "message %q", msg)
	}
}

// TestReferenceMessageScheduleIsRoundCountIndependent checks that truncating the round
// count to R only ever changes the digest by re-deriving it from the
// same prefix of working-state updates: running R+1 rounds and then
// discarding the (R+1)th update's effect is not meaningful here since
// finalisation differs per round count, so instead this asserts the
// message schedule itself — which is shared across round counts — is
// computed identically regardless of how many compression rounds
// follow it.
func TestReferenceMessageScheduleIsRoundCountIndependent(t *testing.T) {
	words := padSingleBlock(t, []byte("reduced vs full schedule"))

	var wShort [80]uint32
	copy(wShort[:16], words[:])
	Reference(20, &wShort)

	var wLong [80]uint32
	copy(wLong[:16], words[:])
	Reference(MaxRounds, &wLong)

	assert.Equal(t, wShort[:20], wLong[:20])
}

func TestReferenceRoundsBounds(t *testing.T) {
	for _, r := range []int{16, 20, 40, 60, 80} {
		words := padSingleBlock(t, []byte("bounds"))
		var w [80]uint32
		copy(w[:16], words[:])
		assert.NotPanics(t, func() {
			Reference(r, &w)
		})
	}
}
