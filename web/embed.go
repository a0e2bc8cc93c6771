// Package web carries the landing page and its static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html assets
var files embed.FS

// Index returns the landing page.
func Index() ([]byte, error) {
	return files.ReadFile("index.html")
}

// Assets is the asset tree rooted at assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(files, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
