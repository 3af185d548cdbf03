// Package server provides the read-only HTTP API over the MakeCountry
// catalogs.
//
// The layering is CLI -> App -> Server -> Router -> Handlers:
//
//   - Server: core struct with lifecycle management
//   - Config: server configuration with defaults
//   - Router: chi routes and the middleware chain
//   - Handlers: request handlers, one file per catalog
//
// Usage:
//
//	cfg := server.DefaultConfig()
//	cfg.Port = 8080
//
//	srv, err := server.New(app, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(":8080", srv.Handler())
//
// @title MakeCountry Document API
// @version 1.0
// @description Read-only reference API for the MakeCountry Minecraft addon:
// @description commands, items, recipes, nation systems and links.
// @BasePath /api/v1
package server

//go:generate gomarkdoc --output README.md .
