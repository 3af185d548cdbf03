package catalogs

import "fmt"

// Issue is a content problem that does not stop the store from loading,
// such as a reference the pages render with a fallback.
type Issue struct {
	Kind    Kind   `json:"kind"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

// String formats the issue for CLI output.
func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Kind.Resource(), i.ID, i.Message)
}

// Lint reports dangling references in the loaded content, in catalog order:
// related command ids with no listing entry, command details with no
// listing entry, and recipe pattern symbols with no glyph.
func (s *Store) Lint() []Issue {
	var issues []Issue

	for _, d := range s.commandDetails.entries {
		if _, ok := Lookup(s.commands.entries, d.ID); !ok {
			issues = append(issues, Issue{
				Kind:    KindCommandDetails,
				ID:      d.ID,
				Message: "no command listing entry",
			})
		}
		for _, rc := range s.RelatedCommands(d) {
			if !rc.Available {
				issues = append(issues, Issue{
					Kind:    KindCommandDetails,
					ID:      d.ID,
					Message: fmt.Sprintf("related command %q not found, shown as %q", rc.ID, rc.Label),
				})
			}
		}
	}

	for _, r := range s.recipes.entries {
		seen := make(map[string]bool)
		for _, row := range r.Pattern {
			for _, cell := range row {
				if cell == "" || seen[cell] {
					continue
				}
				seen[cell] = true
				if _, ok := s.symbols[cell]; !ok {
					issues = append(issues, Issue{
						Kind:    KindRecipes,
						ID:      r.ID,
						Message: fmt.Sprintf("pattern symbol %q has no glyph", cell),
					})
				}
			}
		}
	}

	return issues
}
