// Package spec embeds the OpenAPI description of the HTTP API so the running
// server can hand it out at /openapi.yaml.
package spec

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
