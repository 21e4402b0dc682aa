// Package weight2plate embeds the static frontend served by the server
// binary.
package weight2plate

import "embed"

//go:embed web/static
var WebFS embed.FS
