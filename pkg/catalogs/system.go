package catalogs

import "slices"

// System describes one gameplay system of the addon.
type System struct {
	Record   `yaml:",inline"`
	Icon     string   `json:"icon,omitempty" yaml:"icon"`
	Color    string   `json:"color,omitempty" yaml:"color"`
	Features []string `json:"features" yaml:"features"`
	Details  string   `json:"details" yaml:"details"`
}

// Clone returns a deep copy of the system.
func (s System) Clone() System {
	s.Features = slices.Clone(s.Features)
	return s
}
