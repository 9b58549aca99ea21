package config

const (
	// DefaultFoundryProfile is used when FOUNDRY_PROFILE is unset
	DefaultFoundryProfile = "default"

	// DefaultOutPath is forge's default compiled artifact directory
	DefaultOutPath = "out"
)

// FoundryConfig represents the parts of foundry.toml the generator reads
type FoundryConfig struct {
	Profile map[string]ProfileConfig `toml:"profile"`
}

// ProfileConfig represents a profile's foundry configuration
type ProfileConfig struct {
	OutPath string `toml:"out,omitempty"`
}

// OutPath returns the artifact directory of a profile. Profiles other than
// default inherit from default, as forge does.
func (c *FoundryConfig) OutPath(profile string) string {
	if c == nil {
		return DefaultOutPath
	}
	if p, ok := c.Profile[profile]; ok && p.OutPath != "" {
		return p.OutPath
	}
	if p, ok := c.Profile[DefaultFoundryProfile]; ok && p.OutPath != "" {
		return p.OutPath
	}
	return DefaultOutPath
}
