package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUnitVolume(t *testing.T) {
	for unit, factor := range map[string]float64{
		"tsp":   5,
		"tbsp":  15,
		"cup":   240,
		"cups":  240,
		"ml":    1,
		"l":     1000,
		"fl oz": 30,
	} {
		info := NormalizeUnit(unit)
		assert.Equal(t, Volume, info.Dimension, unit)
		assert.Equal(t, CanonicalVolume, info.Canonical, unit)
		assert.Equal(t, factor, info.Factor, unit)
	}
}

func TestNormalizeUnitMass(t *testing.T) {
	for unit, factor := range map[string]float64{
		"g":  1,
		"kg": 1000,
		"oz": 28.35,
		"lb": 453.59,
	} {
		info := NormalizeUnit(unit)
		assert.Equal(t, Mass, info.Dimension, unit)
		assert.Equal(t, CanonicalMass, info.Canonical, unit)
		assert.Equal(t, factor, info.Factor, unit)
	}
}

func TestNormalizeUnitCount(t *testing.T) {
	for _, unit := range []string{"piece", "pieces", "clove", "slice", "whole", "can"} {
		info := NormalizeUnit(unit)
		assert.Equal(t, Count, info.Dimension, unit)
		assert.Equal(t, CanonicalCount, info.Canonical, unit)
		assert.Equal(t, 1.0, info.Factor, unit)
	}
}

func TestNormalizeUnitUnknown(t *testing.T) {
	for _, unit := range []string{"", "pinch", "bunch", "handful"} {
		info := NormalizeUnit(unit)
		assert.Equal(t, Unknown, info.Dimension, "unit %q", unit)
	}
}

// Ounces are mass; fluid ounces are volume. The two never merge.
func TestOunceIsMassNotVolume(t *testing.T) {
	assert.Equal(t, Mass, NormalizeUnit("oz").Dimension)
	assert.Equal(t, Volume, NormalizeUnit("fl oz").Dimension)
}
