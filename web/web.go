// Package web holds the embedded single-page frontend served at /.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
