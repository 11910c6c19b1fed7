package advice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarwatch/panel-api/internal/advice"
)

func TestLabelsOrder(t *testing.T) {
	labels := advice.Labels()
	require.Len(t, labels, 6)
	assert.Equal(t, []advice.ClassLabel{
		advice.BirdDrop,
		advice.Clean,
		advice.Dusty,
		advice.ElectricalDamage,
		advice.PhysicalDamage,
		advice.SnowCovered,
	}, labels)
}

func TestLabelsReturnsCopy(t *testing.T) {
	labels := advice.Labels()
	labels[0] = "mutated"
	assert.Equal(t, advice.BirdDrop, advice.Labels()[0])
}

func TestLookupKnownLabels(t *testing.T) {
	for _, label := range advice.Labels() {
		entry := advice.Lookup(label)
		assert.NotEmpty(t, entry.Recommendations, "label %s", label)
		assert.NotEmpty(t, entry.Tips, "label %s", label)
	}
}

func TestLookupUnknownLabel(t *testing.T) {
	entry := advice.Lookup("Hail-damage")
	assert.Equal(t, []string{"No recommendations"}, entry.Recommendations)
	assert.Equal(t, []string{"No tips"}, entry.Tips)
}

func TestLookupContent(t *testing.T) {
	entry := advice.Lookup(advice.Clean)
	assert.Contains(t, entry.Recommendations, "No action required. The panels are in good condition.")
}
