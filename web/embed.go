// Package web provides the embedded static assets (CSS) served at
// /static/ and copied verbatim into static exports.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
