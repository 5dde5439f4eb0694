package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroceryItemListValueEmpty(t *testing.T) {
	var list GroceryItemList
	val, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", val)
}

func TestGroceryItemListRoundTrip(t *testing.T) {
	list := GroceryItemList{
		{Name: "chicken broth", Quantity: 720, Unit: "ml", Category: "pantry", RecipeIDs: []string{"a", "b"}},
		{Name: "salt", RawAmount: "to taste", Category: "pantry", RecipeIDs: []string{"a"}},
	}

	val, err := list.Value()
	require.NoError(t, err)

	var decoded GroceryItemList
	require.NoError(t, decoded.Scan(val))
	assert.Equal(t, list, decoded)
}

func TestGroceryItemListScanNil(t *testing.T) {
	var list GroceryItemList
	require.NoError(t, list.Scan(nil))
	assert.Empty(t, list)
}

func TestGroceryItemListScanString(t *testing.T) {
	var list GroceryItemList
	require.NoError(t, list.Scan(`[{"name":"flour","quantity":1200,"unit":"g","category":"pantry","recipe_ids":["x"]}]`))
	require.Len(t, list, 1)
	assert.Equal(t, "flour", list[0].Name)
}
