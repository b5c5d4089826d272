package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBillableDimensionalWeight(t *testing.T) {
	// Under the volume threshold actual weight applies.
	assert.Zero(t, BillableDimensionalWeight(12, 12, 12))
	assert.Zero(t, BillableDimensionalWeight(0, 0, 0))

	// 24x24x24 = 13824 cubic inches, over the threshold.
	assert.InDelta(t, 13824.0/194, BillableDimensionalWeight(24, 24, 24), 1e-9)
}

func TestExceedsWeightLimit(t *testing.T) {
	assert.False(t, ExceedsWeightLimit(150))
	assert.True(t, ExceedsWeightLimit(150.1))
}
