package public

import (
	"embed"
	"io/fs"
)

//go:embed assets/*
var static embed.FS

// StaticFS returns the files served under /assets.
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "assets")
}
