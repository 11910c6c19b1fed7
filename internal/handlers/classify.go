package handlers

import "math"

// normalize applies softmax across a raw score vector. A single-element vector
// is passed through unchanged: a one-output head emits a post-activation value
// already, and softmax over one element would always yield 1.0.
func normalize(scores []float32) []float64 {
	out := make([]float64, len(scores))
	if len(scores) == 1 {
		out[0] = float64(scores[0])
		return out
	}

	// Shift by the max before exponentiating to avoid overflow; the ratios,
	// and therefore the probabilities, are unchanged.
	maxv := float64(scores[0])
	for _, s := range scores[1:] {
		if float64(s) > maxv {
			maxv = float64(s)
		}
	}

	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(float64(s) - maxv)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

// argmax returns the first index attaining the maximum value.
func argmax(probs []float64) int {
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best
}
