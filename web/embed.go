// Package web carries the embedded browser client. The client is plain
// HTML/JS served as-is; all behavior lives in the JSON API.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Assets returns the static client files rooted at the directory served as /.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
