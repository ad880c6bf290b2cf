package game

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandIsDeterministicPerSeed(t *testing.T) {
	a, b, c := NewRand(7), NewRand(7), NewRand(8)
	same, differ := true, false
	for i := 0; i < 32; i++ {
		x, y, z := a.NextU64(), b.NextU64(), c.NextU64()
		same = same && x == y
		differ = differ || x != z
	}
	assert.True(t, same)
	assert.True(t, differ)
}

func TestRandZeroSeedStillRuns(t *testing.T) {
	r := NewRand(0)
	assert.NotEqual(t, r.NextU64(), r.NextU64())
}

func TestIntnStaysInRange(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		assert.True(t, v >= 0 && v < 7)
	}
	assert.Equal(t, 0, r.Intn(0))
}

func TestShuffleIsAPermutation(t *testing.T) {
	r := NewRand(42)
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	r.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, clamp(2.0, 0, 1))
	assert.Equal(t, 3, clamp(3, 1, 5))
}
