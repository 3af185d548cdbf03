package catalogs

import (
	"maps"

	"github.com/karonyt/MakeCountryDocument/internal/embedded"
)

// Store groups every catalog of the site. It is built once and never mutated.
type Store struct {
	site           Site
	commands       *Catalog[Command]
	commandDetails *Catalog[CommandDetail]
	items          *Catalog[Item]
	recipes        *Catalog[Recipe]
	systems        *Catalog[System]
	links          *Catalog[Link]
	symbols        map[string]string
}

// NewEmbedded builds the store from the content compiled into the binary.
func NewEmbedded() (*Store, error) {
	return Load(embedded.Catalog())
}

// Site returns the home page summary.
func (s *Store) Site() Site { return s.site.Clone() }

// Commands returns the command listing catalog.
func (s *Store) Commands() *Catalog[Command] { return s.commands }

// CommandDetails returns the command detail catalog.
func (s *Store) CommandDetails() *Catalog[CommandDetail] { return s.commandDetails }

// Items returns the item catalog.
func (s *Store) Items() *Catalog[Item] { return s.items }

// Recipes returns the recipe catalog.
func (s *Store) Recipes() *Catalog[Recipe] { return s.recipes }

// Systems returns the system catalog.
func (s *Store) Systems() *Catalog[System] { return s.systems }

// Links returns the link catalog.
func (s *Store) Links() *Catalog[Link] { return s.links }

// RecipeSymbols returns the glyph for each crafting pattern symbol.
func (s *Store) RecipeSymbols() map[string]string { return maps.Clone(s.symbols) }

// Facets returns the facet sets of the catalog of the given kind.
func (s *Store) Facets(kind Kind) ([]Facet, bool) {
	switch kind {
	case KindCommands:
		return s.commands.Facets(), true
	case KindCommandDetails:
		return s.commandDetails.Facets(), true
	case KindItems:
		return s.items.Facets(), true
	case KindRecipes:
		return s.recipes.Facets(), true
	case KindSystems:
		return s.systems.Facets(), true
	case KindLinks:
		return s.links.Facets(), true
	default:
		return nil, false
	}
}

// Counts returns the number of entries per catalog kind.
func (s *Store) Counts() map[Kind]int {
	return map[Kind]int{
		KindCommands:       s.commands.Len(),
		KindCommandDetails: s.commandDetails.Len(),
		KindItems:          s.items.Len(),
		KindRecipes:        s.recipes.Len(),
		KindSystems:        s.systems.Len(),
		KindLinks:          s.links.Len(),
	}
}

// RelatedCommands resolves a detail's related command ids against the
// command listing, in the detail's order.
func (s *Store) RelatedCommands(d CommandDetail) []RelatedCommand {
	out := make([]RelatedCommand, 0, len(d.RelatedCommands))
	for _, id := range d.RelatedCommands {
		rc := RelatedCommand{ID: id, Label: RelatedLabel(id)}
		if cmd, ok := s.commands.Lookup(id); ok {
			rc.Label = cmd.Name
			rc.Available = true
		}
		out = append(out, rc)
	}
	return out
}

// LinkGroups returns the links matching q grouped in category facet order.
func (s *Store) LinkGroups(q Query) []LinkGroup {
	var order []string
	if f, ok := s.links.Facet(FacetCategory); ok {
		order = f.Values
	}
	return GroupLinks(s.links.Filter(q), order)
}
