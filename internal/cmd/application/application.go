// Package application defines what commands and the HTTP server need from the
// running CLI application.
//
// Commands accept the interface rather than the concrete app type:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            store, err := app.Store()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use store
//	            return nil
//	        },
//	    }
//	}
//
// Tests pass a Mock instead.
package application

import (
	"github.com/rs/zerolog"

	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// Application is implemented by the app in cmd/makecountry/app.
// All methods must be safe for concurrent use.
type Application interface {
	// Store returns the catalog store. It is built once and shared.
	Store() (*catalogs.Store, error)

	// Logger returns the configured logger.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
