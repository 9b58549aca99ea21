package config

import (
	"path/filepath"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	OutDir      string // compiled artifacts, relative to ProjectRoot unless absolute

	// Toolchain
	ForgeBinary string

	// Execution settings
	Debug          bool
	NonInteractive bool
	SkipBuild      bool
}

// ResolvePath anchors a relative path at the project root.
func (c *RuntimeConfig) ResolvePath(path string) string {
	if filepath.IsAbs(path) || c.ProjectRoot == "" {
		return path
	}
	return filepath.Join(c.ProjectRoot, path)
}
