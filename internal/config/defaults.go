package config

import (
	_ "embed"
)

//go:embed defaults/minebench.yaml
var defaultYAML []byte
