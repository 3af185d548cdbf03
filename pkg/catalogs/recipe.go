package catalogs

import "slices"

// Ingredient is a named quantity used by or produced by a recipe.
type Ingredient struct {
	Name   string `json:"name" yaml:"name"`
	Amount int    `json:"amount" yaml:"amount"`
}

// Recipe is one crafting recipe.
type Recipe struct {
	Record          `yaml:",inline"`
	Difficulty      Rarity       `json:"difficulty" yaml:"difficulty"`
	Icon            string       `json:"icon,omitempty" yaml:"icon"`
	Ingredients     []Ingredient `json:"ingredients" yaml:"ingredients"`
	Pattern         [][]string   `json:"pattern" yaml:"pattern"`
	Result          Ingredient   `json:"result" yaml:"result"`
	UnlockCondition string       `json:"unlock_condition" yaml:"unlock_condition"`
}

// FacetValue resolves category and difficulty.
func (r Recipe) FacetValue(name FacetName) (string, bool) {
	if name == FacetDifficulty {
		return string(r.Difficulty), true
	}
	return r.Record.FacetValue(name)
}

// Clone returns a deep copy of the recipe.
func (r Recipe) Clone() Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	if r.Pattern != nil {
		pattern := make([][]string, len(r.Pattern))
		for i, row := range r.Pattern {
			pattern[i] = slices.Clone(row)
		}
		r.Pattern = pattern
	}
	return r
}

// EmptyCell is rendered for blank grid cells and unknown symbols.
const EmptyCell = "　"

// Grid renders the crafting pattern with the given symbol glyphs.
func (r Recipe) Grid(symbols map[string]string) [][]string {
	grid := make([][]string, len(r.Pattern))
	for i, row := range r.Pattern {
		grid[i] = make([]string, len(row))
		for j, cell := range row {
			glyph, ok := symbols[cell]
			if !ok || cell == "" {
				glyph = EmptyCell
			}
			grid[i][j] = glyph
		}
	}
	return grid
}
