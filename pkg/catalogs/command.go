package catalogs

import (
	"slices"
	"strings"
)

// Command is one entry of the command listing.
type Command struct {
	Record     `yaml:",inline"`
	Usage      string     `json:"usage" yaml:"usage"`
	Permission Permission `json:"permission" yaml:"permission"`
	Icon       string     `json:"icon,omitempty" yaml:"icon"`
}

// FacetValue resolves category and permission.
func (c Command) FacetValue(name FacetName) (string, bool) {
	if name == FacetPermission {
		return string(c.Permission), true
	}
	return c.Record.FacetValue(name)
}

// Clone returns a copy of the command.
func (c Command) Clone() Command { return c }

// CommandExample is one invocation shown on a command detail page.
type CommandExample struct {
	Command     string `json:"command" yaml:"command"`
	Description string `json:"description" yaml:"description"`
}

// CommandParameter documents one argument of a command.
type CommandParameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description" yaml:"description"`
}

// CommandDetail is the full reference page of a command.
type CommandDetail struct {
	Command         `yaml:",inline"`
	Examples        []CommandExample   `json:"examples" yaml:"examples"`
	Parameters      []CommandParameter `json:"parameters" yaml:"parameters"`
	Notes           []string           `json:"notes" yaml:"notes"`
	RelatedCommands []string           `json:"related_commands" yaml:"related_commands"`
}

// Clone returns a deep copy of the detail.
func (d CommandDetail) Clone() CommandDetail {
	d.Examples = slices.Clone(d.Examples)
	d.Parameters = slices.Clone(d.Parameters)
	d.Notes = slices.Clone(d.Notes)
	d.RelatedCommands = slices.Clone(d.RelatedCommands)
	return d
}

// RelatedCommand is a related command link resolved against the listing.
type RelatedCommand struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// RelatedLabel is the label shown for a related command id that has no
// listing entry: a slash, then the id with its first hyphen as a space.
func RelatedLabel(id string) string {
	return "/" + strings.Replace(id, "-", " ", 1)
}
