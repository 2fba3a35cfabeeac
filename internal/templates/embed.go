package templates

import "embed"

//go:embed all:builtin
var builtinFS embed.FS

const builtinRoot = "builtin"
