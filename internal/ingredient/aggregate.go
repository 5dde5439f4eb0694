package ingredient

import (
	"math"
	"sort"

	"github.com/platefit/platefit-v2/backend/internal/models"
)

// Result is the outcome of aggregating a plan: merged line items plus the
// residual lines that could not be merged (parse failure or unknown
// unit). Both slices are in final display order.
type Result struct {
	Items     []models.GroceryItem
	Residuals []models.GroceryItem
}

type groupKey struct {
	name string
	unit string
}

type group struct {
	quantity  float64
	category  string
	recipeIDs []string
	seen      map[string]bool
}

// Aggregate flattens a hydrated meal plan into a deduplicated grocery
// list. The input is never mutated; repeated runs over the same plan
// produce identical output.
func Aggregate(plan *models.MealPlan) Result {
	groups := make(map[groupKey]*group)
	var order []groupKey
	var residuals []models.GroceryItem

	for _, rec := range flatten(plan) {
		parsed, ok := Parse(rec)
		if !ok {
			residuals = append(residuals, residualItem(rec, parsed, 0))
			continue
		}

		info := NormalizeUnit(parsed.Unit)
		if info.Dimension == Unknown {
			residuals = append(residuals, residualItem(rec, parsed, parsed.Quantity))
			continue
		}

		key := groupKey{name: parsed.Key, unit: info.Canonical}
		g, exists := groups[key]
		if !exists {
			g = &group{
				category: Categorize(parsed.Key),
				seen:     make(map[string]bool),
			}
			groups[key] = g
			order = append(order, key)
		}
		g.quantity += parsed.Quantity * info.Factor
		if id := rec.RecipeID.String(); !g.seen[id] {
			g.seen[id] = true
			g.recipeIDs = append(g.recipeIDs, id)
		}
	}

	items := make([]models.GroceryItem, 0, len(order))
	for _, key := range order {
		g := groups[key]
		items = append(items, models.GroceryItem{
			Name:      key.name,
			Quantity:  roundDisplay(g.quantity),
			Unit:      key.unit,
			Category:  g.category,
			RecipeIDs: g.recipeIDs,
		})
	}

	sortItems(items)
	sortItems(residuals)
	return Result{Items: items, Residuals: residuals}
}

// flatten walks days, meals and ingredients in position order. A nil plan
// (or one with no meals) simply yields nothing.
func flatten(plan *models.MealPlan) []models.IngredientRecord {
	if plan == nil {
		return nil
	}

	days := append([]models.PlanDay(nil), plan.Days...)
	sort.SliceStable(days, func(i, j int) bool { return days[i].Position < days[j].Position })

	var out []models.IngredientRecord
	for _, day := range days {
		meals := append([]models.PlanMeal(nil), day.Meals...)
		sort.SliceStable(meals, func(i, j int) bool { return meals[i].Position < meals[j].Position })

		for _, meal := range meals {
			ingredients := append([]models.IngredientRecord(nil), meal.Recipe.Ingredients...)
			sort.SliceStable(ingredients, func(i, j int) bool { return ingredients[i].Position < ingredients[j].Position })

			out = append(out, ingredients...)
		}
	}
	return out
}

func residualItem(rec models.IngredientRecord, parsed Parsed, qty float64) models.GroceryItem {
	return models.GroceryItem{
		Name:      parsed.Key,
		Quantity:  qty,
		RawAmount: rec.Amount,
		Unit:      rec.Unit,
		Category:  Categorize(parsed.Key),
		RecipeIDs: []string{rec.RecipeID.String()},
	}
}

var categoryRank = func() map[string]int {
	ranks := make(map[string]int, len(CategoryOrder))
	for i, c := range CategoryOrder {
		ranks[c] = i
	}
	return ranks
}()

// sortItems orders by category, then name, then unit, then raw amount.
// This is a presentation choice but it must be deterministic so repeated
// generations of an unchanged plan are byte-identical.
func sortItems(items []models.GroceryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if categoryRank[a.Category] != categoryRank[b.Category] {
			return categoryRank[a.Category] < categoryRank[b.Category]
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Unit != b.Unit {
			return a.Unit < b.Unit
		}
		return a.RawAmount < b.RawAmount
	})
}

// roundDisplay rounds a summed total for display. Source quantities are
// never rounded before summation.
func roundDisplay(q float64) float64 {
	return math.Round(q*100) / 100
}
