// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across commands.
package emoji

// Status symbols.
const (
	// Success marks completed operations and resolvable references.
	Success = "✓"

	// Error marks failed checks.
	Error = "✗"

	// Stop marks shutdowns.
	Stop = "✗"

	// Warning marks non-fatal problems found during validation.
	Warning = "!"

	// Unknown marks references that do not resolve, such as a related
	// command with no listing entry.
	Unknown = "?"

	// Launch marks a server coming up.
	Launch = "🚀"
)
