package catalogs

// Link is an external resource. Its category is the group it is listed under.
type Link struct {
	Record `yaml:",inline"`
	URL    string `json:"url" yaml:"url"`
	Icon   string `json:"icon,omitempty" yaml:"icon"`
	Badge  string `json:"badge,omitempty" yaml:"badge"`
}

// Clone returns a copy of the link.
func (l Link) Clone() Link { return l }

// LinkGroup is the links of one category.
type LinkGroup struct {
	Category string `json:"category"`
	Items    []Link `json:"items"`
}

// GroupLinks groups links by category following order, keeping link order
// within each group. Empty groups are dropped; categories missing from order
// follow in first-seen order.
func GroupLinks(links []Link, order []string) []LinkGroup {
	byCategory := make(map[string][]Link)
	seen := make([]string, 0, len(order))
	for _, l := range links {
		if _, ok := byCategory[l.Category]; !ok {
			seen = append(seen, l.Category)
		}
		byCategory[l.Category] = append(byCategory[l.Category], l)
	}

	groups := make([]LinkGroup, 0, len(byCategory))
	emit := func(category string) {
		if items, ok := byCategory[category]; ok {
			groups = append(groups, LinkGroup{Category: category, Items: items})
			delete(byCategory, category)
		}
	}
	for _, c := range order {
		emit(c)
	}
	for _, c := range seen {
		emit(c)
	}
	return groups
}
