package catalogs

import "slices"

// Item is one entry of the item catalog.
type Item struct {
	Record       `yaml:",inline"`
	Rarity       Rarity   `json:"rarity" yaml:"rarity"`
	Icon         string   `json:"icon,omitempty" yaml:"icon"`
	ObtainMethod string   `json:"obtain_method" yaml:"obtain_method"`
	Effects      []string `json:"effects" yaml:"effects"`
	Durability   string   `json:"durability" yaml:"durability"`
}

// FacetValue resolves category and rarity.
func (it Item) FacetValue(name FacetName) (string, bool) {
	if name == FacetRarity {
		return string(it.Rarity), true
	}
	return it.Record.FacetValue(name)
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	it.Effects = slices.Clone(it.Effects)
	return it
}
