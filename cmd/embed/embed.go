// Package embed carries the built-in project templates.
package embed

import "embed"

//go:embed all:scaffold
var Scaffold embed.FS
