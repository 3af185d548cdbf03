package catalogs

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/karonyt/MakeCountryDocument/pkg/errors"
)

// Content files expected at the root of the filesystem passed to Load.
const (
	SiteFile           = "site.yaml"
	CommandsFile       = "commands.yaml"
	CommandDetailsFile = "command_details.yaml"
	ItemsFile          = "items.yaml"
	RecipesFile        = "recipes.yaml"
	SystemsFile        = "systems.yaml"
	LinksFile          = "links.yaml"
)

// document is the on-disk shape of one catalog file.
type document[E any] struct {
	Facets  []Facet           `yaml:"facets"`
	Symbols map[string]string `yaml:"symbols,omitempty"`
	Entries []E               `yaml:"entries"`
}

// Load builds a store from the YAML content files in fsys.
func Load(fsys fs.FS) (*Store, error) {
	s := &Store{}

	if err := readYAML(fsys, SiteFile, &s.site); err != nil {
		return nil, err
	}

	var err error
	if s.commands, err = loadCatalog[Command](fsys, KindCommands, CommandsFile, nil); err != nil {
		return nil, err
	}
	if s.commandDetails, err = loadCatalog[CommandDetail](fsys, KindCommandDetails, CommandDetailsFile, nil); err != nil {
		return nil, err
	}
	if s.items, err = loadCatalog[Item](fsys, KindItems, ItemsFile, nil); err != nil {
		return nil, err
	}
	if s.recipes, err = loadCatalog[Recipe](fsys, KindRecipes, RecipesFile, &s.symbols); err != nil {
		return nil, err
	}
	if s.systems, err = loadCatalog[System](fsys, KindSystems, SystemsFile, nil); err != nil {
		return nil, err
	}
	if s.links, err = loadCatalog[Link](fsys, KindLinks, LinksFile, nil); err != nil {
		return nil, err
	}
	if s.symbols == nil {
		s.symbols = map[string]string{}
	}

	return s, nil
}

func loadCatalog[E Cloner[E]](fsys fs.FS, kind Kind, file string, symbols *map[string]string) (*Catalog[E], error) {
	var doc document[E]
	if err := readYAML(fsys, file, &doc); err != nil {
		return nil, err
	}
	if symbols != nil {
		*symbols = doc.Symbols
	}
	cat, err := NewCatalog(kind, doc.Entries, doc.Facets)
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", string(kind), err)
	}
	return cat, nil
}

func readYAML(fsys fs.FS, file string, v any) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return errors.WrapResource("read", "catalog file", file, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.WrapParse("yaml", file, err)
	}
	return nil
}
