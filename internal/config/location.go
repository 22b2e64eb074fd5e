package config

import "time"

// Location resolves the configured analytics timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Analytics.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Analytics.Timezone)
}
