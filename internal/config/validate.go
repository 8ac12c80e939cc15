package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validAssume = map[string]bool{
	"always": true, "if-none-found": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level: must be one of debug, info, warn, error; got %q", c.Logging.Level))
	}
	if c.Queue.Size < 0 {
		errs = append(errs, fmt.Sprintf("queue.size: must not be negative, got %d", c.Queue.Size))
	}
	if c.Cache.TTLHours < 0 {
		errs = append(errs, fmt.Sprintf("cache.ttl_hours: must not be negative, got %d", c.Cache.TTLHours))
	}

	for i, std := range c.Standards {
		if len(std.Tags) == 0 && std.Group == "" {
			errs = append(errs, fmt.Sprintf("standard[%d]: needs tags or a group", i))
		}
		if !validAssume[std.Assume] {
			errs = append(errs, fmt.Sprintf("standard[%d].assume: must be always or if-none-found; got %q", i, std.Assume))
		}
	}

	for i, compat := range c.Compatibility {
		if compat.Source == "" || compat.Compatible == "" {
			errs = append(errs, fmt.Sprintf("compatibility[%d]: source and compatible are required", i))
		}
	}

	for i, src := range c.Sources {
		if src.Name == "" {
			errs = append(errs, fmt.Sprintf("source[%d].name: required", i))
		}
		if src.URL == "" {
			errs = append(errs, fmt.Sprintf("source[%d].url: required", i))
		}
	}

	for i, corr := range append(append([]FromToConfig{}, c.Corrections.Groups...), c.Corrections.Tags...) {
		if corr.From == "" || corr.To == "" {
			errs = append(errs, fmt.Sprintf("corrections[%d]: from and to are required", i))
		}
	}

	return errs
}
