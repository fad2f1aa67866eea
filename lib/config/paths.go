package config

import (
	"path/filepath"
)

// CfgPath is a path from the config file. Relative paths are taken
// relative to the directory of the config file.
type CfgPath string

func (c CfgPath) Resolve(base string) CfgPath {
	if c == "" || filepath.IsAbs(string(c)) || base == "" {
		return c
	}
	return CfgPath(filepath.Join(base, string(c)))
}
