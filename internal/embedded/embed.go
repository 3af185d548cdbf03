// Package embedded holds the site content compiled into the binary.
package embedded

import (
	"embed"
	"io/fs"
)

// FS embeds the catalog YAML documents at build time.
//
//go:embed catalog/*.yaml
var FS embed.FS

// Catalog returns the embedded catalog directory as the filesystem root.
func Catalog() fs.FS {
	sub, err := fs.Sub(FS, "catalog")
	if err != nil {
		// catalog/ is a compile-time pattern; Sub only fails on invalid paths
		panic(err)
	}
	return sub
}
