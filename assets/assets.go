// Package assets holds resources bundled into the binary.
package assets

import _ "embed"

// Payload is the sample expense data used when no data file is configured.
//
//go:embed payload.json
var Payload []byte
