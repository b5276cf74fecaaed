package assets

import _ "embed"

// Level0 is the default arena scenario.
//
//go:embed arenas/level0.yaml
var Level0 []byte
