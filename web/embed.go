// Package web carries the embedded presentation layer.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
