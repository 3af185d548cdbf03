package catalogs

import "slices"

// NavItem is one entry of the site navigation.
type NavItem struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

// Feature is a highlighted feature on the home page.
type Feature struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Points      []string `json:"points" yaml:"points"`
}

// Site is the home page summary of the addon.
type Site struct {
	Title               string    `json:"title" yaml:"title"`
	Tagline             string    `json:"tagline" yaml:"tagline"`
	Version             string    `json:"version" yaml:"version"`
	GameVersion         string    `json:"game_version" yaml:"game_version"`
	Language            string    `json:"language" yaml:"language"`
	Navigation          []NavItem `json:"navigation" yaml:"navigation"`
	Features            []Feature `json:"features" yaml:"features"`
	SupportedVersions   []string  `json:"supported_versions" yaml:"supported_versions"`
	UnsupportedVersions []string  `json:"unsupported_versions" yaml:"unsupported_versions"`
}

// Clone returns a deep copy of the site summary.
func (s Site) Clone() Site {
	s.Navigation = slices.Clone(s.Navigation)
	features := make([]Feature, len(s.Features))
	for i, f := range s.Features {
		f.Points = slices.Clone(f.Points)
		features[i] = f
	}
	s.Features = features
	s.SupportedVersions = slices.Clone(s.SupportedVersions)
	s.UnsupportedVersions = slices.Clone(s.UnsupportedVersions)
	return s
}
