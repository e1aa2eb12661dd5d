package assets

import (
	_ "embed"
)

// DefaultConfigYAML is the commented template written by `movierec config init`.
//
//go:embed defaults/movierec.yaml
var DefaultConfigYAML []byte
