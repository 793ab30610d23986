package engine

// Recipe is one goal of a round. The list is fixed and played in order.
type Recipe struct {
	Name        string
	Ingredients Counts
	Seconds     float64
}

var recipeBook = [...]struct {
	name string
	each int
}{
	{"Basic Salad", 3},
	{"Veggie Burger", 4},
	{"Deluxe Sandwich", 5},
	{"Garden Special", 6},
	{"Chef's Choice", 7},
}

// Recipes builds the recipe list for a given per-recipe time budget.
func Recipes(seconds float64) []Recipe {
	out := make([]Recipe, len(recipeBook))
	for i, r := range recipeBook {
		out[i] = Recipe{
			Name:        r.name,
			Ingredients: Counts{Tomato: r.each, Lettuce: r.each, Cheese: r.each},
			Seconds:     seconds,
		}
	}
	return out
}
