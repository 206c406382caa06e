package featured

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

func challenges(ids ...string) []model.Challenge {
	out := make([]model.Challenge, len(ids))
	for i, id := range ids {
		out[i] = model.Challenge{ID: id}
	}
	return out
}

func TestPartitionInvariant(t *testing.T) {
	input := challenges("a", "b", "c", "d")

	for index := 0; index < len(input); index++ {
		picked, available := Partition(Fixed(index), input)
		require.NotNil(t, picked)
		assert.Equal(t, input[index].ID, picked.ID)
		assert.Len(t, available, len(input)-1)

		// Featured and available form an exact partition of the input
		seen := map[string]bool{picked.ID: true}
		for _, ch := range available {
			assert.False(t, seen[ch.ID], "challenge %s appears twice", ch.ID)
			seen[ch.ID] = true
		}
		assert.Len(t, seen, len(input))
	}
}

func TestPartitionEmpty(t *testing.T) {
	picked, available := Partition(First(), nil)
	assert.Nil(t, picked)
	assert.Nil(t, available)

	picked, available = Partition(First(), []model.Challenge{})
	assert.Nil(t, picked)
	assert.Nil(t, available)
}

func TestPartitionSingle(t *testing.T) {
	picked, available := Partition(Random(1), challenges("only"))
	require.NotNil(t, picked)
	assert.Equal(t, "only", picked.ID)
	assert.Empty(t, available)
}

func TestFixedPolicyClamps(t *testing.T) {
	assert.Equal(t, 0, Fixed(-3).Pick(4))
	assert.Equal(t, 3, Fixed(99).Pick(4))
	assert.Equal(t, 2, Fixed(2).Pick(4))
}

func TestRandomPolicyDeterministicWithSeed(t *testing.T) {
	a := Random(42)
	b := Random(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Pick(7), b.Pick(7))
	}
}

func TestRandomPolicyInRange(t *testing.T) {
	p := Random(7)
	for i := 0; i < 100; i++ {
		got := p.Pick(5)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, 5)
	}
}
