package server

import _ "embed"

// indexPage is the static landing page, compiled into the binary so the
// server has no runtime file dependencies.
//
//go:embed static/index.html
var indexPage []byte
