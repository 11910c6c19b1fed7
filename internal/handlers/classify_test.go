package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSumsToOne(t *testing.T) {
	cases := [][]float32{
		{0, 0, 0, 0, 0, 0},
		{1.5, -2.0, 0.3, 7.1, 0.0, -0.5},
		{100, 101},
	}
	for _, scores := range cases {
		probs := normalize(scores)
		var sum float64
		for _, p := range probs {
			sum += p
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestNormalizePreservesArgmax(t *testing.T) {
	scores := []float32{0.2, 3.5, -1.0, 3.4, 0.0, 1.1}
	probs := normalize(scores)
	assert.Equal(t, 1, argmax(probs))
}

func TestNormalizeSingleElementPassthrough(t *testing.T) {
	probs := normalize([]float32{0.42})
	assert.Equal(t, []float64{float64(float32(0.42))}, probs)
}

func TestNormalizeDominantScore(t *testing.T) {
	probs := normalize([]float32{0.1, 0.1, 0.1, 0.1, 0.1, 5.0})
	assert.Equal(t, 5, argmax(probs))
	assert.InDelta(t, 0.9641, probs[5], 0.0005)
}

func TestArgmaxFirstOccurrence(t *testing.T) {
	assert.Equal(t, 1, argmax([]float64{0.1, 0.4, 0.4, 0.1}))
}
