package catalogs

import "regexp"

// FacetName names an enumerated attribute usable as a filter predicate.
type FacetName string

// Facet names used by the embedded catalogs.
const (
	FacetCategory   FacetName = "category"
	FacetPermission FacetName = "permission"
	FacetRarity     FacetName = "rarity"
	FacetDifficulty FacetName = "difficulty"
)

// FacetNames lists every facet name any catalog may declare.
func FacetNames() []FacetName {
	return []FacetName{FacetCategory, FacetPermission, FacetRarity, FacetDifficulty}
}

// idPattern matches kebab-case ASCII identifiers such as "create-country".
var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Record holds the fields every catalog entry shares.
type Record struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// Common returns the record itself. Types embedding Record inherit it.
func (r Record) Common() Record { return r }

// FacetValue resolves the facets every record carries.
func (r Record) FacetValue(name FacetName) (string, bool) {
	if name == FacetCategory {
		return r.Category, true
	}
	return "", false
}

// Entry is the structural contract the filter and lookup functions rely on.
// Everything beyond the common record is opaque display payload.
type Entry interface {
	Common() Record
	FacetValue(name FacetName) (string, bool)
}

// Cloner is an Entry that can produce a copy sharing no mutable state.
type Cloner[E any] interface {
	Entry
	Clone() E
}
