package config

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		NoColor:        BoolPtr(false),
		Verbose:        BoolPtr(false),
		DiffContext:    1,
		MaxValueLength: 200,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.GetNoColor() == defaults.GetNoColor() &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.DiffContext == defaults.DiffContext &&
		c.MaxValueLength == defaults.MaxValueLength
}
