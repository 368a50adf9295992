package scene

import _ "embed"

//go:embed scenes/default.yaml
var defaultScene []byte

// Default returns the built-in scene used when no file is given.
func Default() (*Scene, error) {
	return Parse(defaultScene)
}
