package config

import (
	"github.com/vmunix/scener/internal/reconcile"
	"github.com/vmunix/scener/pkg/naming"
	"github.com/vmunix/scener/pkg/release"
)

// Profile builds the naming profile: the defaults with any configured
// overrides applied. Configured separator rules take precedence over the
// built-in ones, so they are prepended.
func (c *Config) Profile() *naming.Profile {
	prof := naming.DefaultProfile()
	if c.Naming.DefaultSeparator != "" {
		prof.DefaultSeparator = c.Naming.DefaultSeparator
	}
	if c.Naming.SeasonFormat != "" {
		prof.SeasonFormat = c.Naming.SeasonFormat
	}
	if c.Naming.EpisodeFormat != "" {
		prof.EpisodeFormat = c.Naming.EpisodeFormat
	}
	if c.Naming.SeriesNumFormat != "" {
		prof.SeriesNumFormat = c.Naming.SeriesNumFormat
	}
	if c.Naming.Sanitize {
		prof.FinalTransform = naming.SanitizeFilename
	}

	var rules []naming.SeparatorRule
	for _, s := range c.Naming.Separators {
		rules = append(rules, naming.SeparatorRule{
			Context:   s.Context,
			First:     naming.Property(s.First),
			Second:    naming.Property(s.Second),
			Separator: s.Separator,
		})
	}
	prof.Rules = append(rules, prof.Rules...)
	return prof
}

// MetaTags returns the declared meta tags.
func (c *Config) MetaTags() release.Tags {
	tags := make(release.Tags, 0, len(c.Matching.MetaTags))
	for _, t := range c.Matching.MetaTags {
		tags = append(tags, release.Tag(t))
	}
	return tags
}

// StandardReleases returns the configured standard release templates.
func (c *Config) StandardReleases() []release.StandardRelease {
	out := make([]release.StandardRelease, 0, len(c.Standards))
	for _, std := range c.Standards {
		sr := release.StandardRelease{Group: release.Group(std.Group)}
		for _, t := range std.Tags {
			sr.Tags = append(sr.Tags, release.Tag(t))
		}
		if std.Assume == "always" {
			sr.Assume = release.AssumeAlways
		}
		out = append(out, sr)
	}
	return out
}

// CompatRules returns the configured cross-group compatibility rules,
// in declaration order.
func (c *Config) CompatRules() []reconcile.CompatibilityRule {
	out := make([]reconcile.CompatibilityRule, 0, len(c.Compatibility))
	for _, cc := range c.Compatibility {
		out = append(out, reconcile.CrossGroupRule{
			Source:     release.Group(cc.Source),
			Substitute: release.Group(cc.Compatible),
			Symmetric:  cc.Symmetric,
		})
	}
	return out
}

// Correctors returns the configured standardization rules, groups first,
// in declaration order.
func (c *Config) Correctors() []reconcile.Corrector {
	var out []reconcile.Corrector
	for _, g := range c.Corrections.Groups {
		out = append(out, &reconcile.GroupCorrector{From: release.Group(g.From), To: release.Group(g.To)})
	}
	for _, t := range c.Corrections.Tags {
		out = append(out, &reconcile.TagCorrector{From: release.Tag(t.From), To: release.Tag(t.To)})
	}
	return out
}
