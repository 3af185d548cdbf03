package catalogs

import "slices"

// Wildcard selects every value of a facet.
const Wildcard = "all"

// WildcardLabel is the display form of the wildcard shown on the site.
const WildcardLabel = "すべて"

// IsWildcard reports whether v selects every value of a facet.
func IsWildcard(v string) bool {
	return v == "" || v == Wildcard || v == WildcardLabel
}

// Facet is the fixed enumerated value set of one attribute of a catalog.
type Facet struct {
	Name   FacetName `json:"name" yaml:"name"`
	Values []string  `json:"values" yaml:"values"`
}

// Contains reports whether v is a member of the facet.
func (f Facet) Contains(v string) bool {
	return slices.Contains(f.Values, v)
}

// Options returns the selectable values with the wildcard first, the way the
// listing pages render their filter badges.
func (f Facet) Options() []string {
	return append([]string{Wildcard}, f.Values...)
}

// Labels maps each option, wildcard included, to its display label.
func (f Facet) Labels() map[string]string {
	labels := make(map[string]string, len(f.Values)+1)
	labels[Wildcard] = WildcardLabel
	for _, v := range f.Values {
		switch f.Name {
		case FacetPermission:
			labels[v] = Permission(v).Label()
		case FacetRarity, FacetDifficulty:
			labels[v] = Rarity(v).Label()
		default:
			labels[v] = v
		}
	}
	return labels
}

func (f Facet) clone() Facet {
	return Facet{Name: f.Name, Values: slices.Clone(f.Values)}
}

// Permission is the tier required to run a command.
type Permission string

// Permission tiers.
const (
	PermissionPlayer Permission = "player"
	PermissionAdmin  Permission = "admin"
)

// Label returns the Japanese display label.
func (p Permission) Label() string {
	if p == PermissionAdmin {
		return "管理者"
	}
	return "一般"
}

// Rarity is the tier of an item, also used as recipe difficulty.
type Rarity string

// Rarity tiers, lowest first.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

var rarityLabels = map[Rarity]string{
	RarityCommon:    "コモン",
	RarityUncommon:  "アンコモン",
	RarityRare:      "レア",
	RarityLegendary: "レジェンダリー",
}

// Label returns the Japanese display label, or the raw value when unknown.
func (r Rarity) Label() string {
	if l, ok := rarityLabels[r]; ok {
		return l
	}
	return string(r)
}
