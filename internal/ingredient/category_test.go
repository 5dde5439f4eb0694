package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"tomato", CategoryProduce},
		{"red onion", CategoryProduce},
		{"chicken breast", CategoryMeat},
		{"ground beef", CategoryMeat},
		{"milk", CategoryDairy},
		{"cheddar cheese", CategoryDairy},
		{"egg", CategoryDairy},
		{"flour", CategoryPantry},
		{"olive oil", CategoryPantry},
		{"salt", CategoryPantry},
		{"rice noodle", CategoryPantry},
		{"star anise", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.name), "name %q", tt.name)
	}
}

// Compound names resolve to the pantry staple, not the contained
// meat/produce word.
func TestCategorizeCompoundNames(t *testing.T) {
	assert.Equal(t, CategoryPantry, Categorize("chicken broth"))
	assert.Equal(t, CategoryPantry, Categorize("beef stock"))
	assert.Equal(t, CategoryPantry, Categorize("black pepper"))
	assert.Equal(t, CategoryProduce, Categorize("bell pepper"))
}
