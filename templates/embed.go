package templates

import "embed"

// FS holds the layout, partial and page templates.
//
//go:embed layouts/*.tmpl partials/*.tmpl pages/*.tmpl
var FS embed.FS
