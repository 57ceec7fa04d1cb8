// Package web holds the browser page served at the root of the API server.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var files embed.FS

// FS returns the page assets rooted at the static directory.
func FS() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// static/ is embedded at build time, so Sub cannot fail.
		panic(err)
	}
	return sub
}
