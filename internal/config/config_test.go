package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/scener/pkg/naming"
	"github.com/vmunix/scener/pkg/release"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scener.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"

[database]
path = "/var/lib/scener/scener.db"

[cache]
enabled = true
ttl_hours = 12

[naming]
sanitize = true

[[naming.separator]]
first = "tag"
second = "tag"
separator = " "

[matching]
meta_tags = ["PROPER", "REPACK"]
guessing = true

[queue]
size = 8

[[standard]]
tags = ["720p", "HDTV", "x264"]
group = "DIMENSION"
assume = "always"

[[compatibility]]
source = "DIMENSION"
compatible = "LOL"
symmetric = true

[[source]]
name = "testdb"
url = "http://localhost:8080"
api_key = "secret"

[[corrections.group]]
from = "DIM"
to = "DIMENSION"

[[corrections.tag]]
from = "WEBDL"
to = "WEB-DL"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/var/lib/scener/scener.db", cfg.Database.Path)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 12, cfg.Cache.TTLHours)
	assert.True(t, cfg.Matching.Guessing)
	assert.Equal(t, 8, cfg.Queue.Size)
	require.Len(t, cfg.Standards, 1)
	assert.Equal(t, "always", cfg.Standards[0].Assume)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "secret", cfg.Sources[0].APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.toml")
	require.Error(t, err)
}

func TestLoadEnvSubstitution(t *testing.T) {
	t.Setenv("SCENER_TEST_KEY", "from-env")
	path := writeConfig(t, `
[[source]]
name = "testdb"
url = "http://localhost:8080"
api_key = "${SCENER_TEST_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "from-env", cfg.Sources[0].APIKey)
}

func TestLoadEnvSubstitutionMissingVarKept(t *testing.T) {
	path := writeConfig(t, `
[[source]]
name = "testdb"
url = "http://localhost:8080"
api_key = "${SCENER_DEFINITELY_UNSET}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "${SCENER_DEFINITELY_UNSET}", cfg.Sources[0].APIKey)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "./data/scener.db", cfg.Database.Path)
	assert.Equal(t, 64, cfg.Queue.Size)
	assert.Equal(t, 24, cfg.Cache.TTLHours)
	assert.Contains(t, cfg.Matching.MetaTags, "PROPER")
	assert.Empty(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"negative queue", func(c *Config) { c.Queue.Size = -1 }, "queue.size"},
		{"negative cache ttl", func(c *Config) { c.Cache.TTLHours = -1 }, "cache.ttl_hours"},
		{"empty standard", func(c *Config) { c.Standards = []StandardConfig{{}} }, "standard[0]"},
		{"bad assume", func(c *Config) {
			c.Standards = []StandardConfig{{Group: "X", Assume: "sometimes"}}
		}, "standard[0].assume"},
		{"incomplete compatibility", func(c *Config) {
			c.Compatibility = []CompatConfig{{Source: "DIMENSION"}}
		}, "compatibility[0]"},
		{"source without url", func(c *Config) {
			c.Sources = []SourceConfig{{Name: "testdb"}}
		}, "source[0].url"},
		{"incomplete correction", func(c *Config) {
			c.Corrections.Groups = []FromToConfig{{From: "DIM"}}
		}, "corrections[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0], tt.wantErr)
		})
	}
}

func TestProfileBuild(t *testing.T) {
	cfg := Default()
	cfg.Naming.DefaultSeparator = "."
	cfg.Naming.SeasonFormat = "Season %d "
	cfg.Naming.Sanitize = true
	cfg.Naming.Separators = []SeparatorConfig{
		{First: "tag", Second: "tag", Separator: " "},
	}

	prof := cfg.Profile()
	assert.Equal(t, ".", prof.DefaultSeparator)
	assert.Equal(t, "Season 3 ", prof.FormatSeason(3))
	assert.NotNil(t, prof.FinalTransform)

	// the configured rule shadows the built-in tag.tag rule
	assert.Equal(t, naming.SeparatorRule{
		First:     "tag",
		Second:    "tag",
		Separator: " ",
	}, prof.Rules[0])
}

func TestBuildHelpers(t *testing.T) {
	cfg := Default()
	cfg.Matching.MetaTags = []string{"PROPER"}
	cfg.Standards = []StandardConfig{
		{Tags: []string{"720p", "HDTV"}, Group: "DIMENSION", Assume: "always"},
		{Tags: []string{"1080p"}, Group: "NTb"},
	}
	cfg.Compatibility = []CompatConfig{{Source: "DIMENSION", Compatible: "LOL"}}
	cfg.Corrections.Groups = []FromToConfig{{From: "DIM", To: "DIMENSION"}}
	cfg.Corrections.Tags = []FromToConfig{{From: "WEBDL", To: "WEB-DL"}}

	assert.Equal(t, release.Tags{"PROPER"}, cfg.MetaTags())

	stds := cfg.StandardReleases()
	require.Len(t, stds, 2)
	assert.Equal(t, release.AssumeAlways, stds[0].Assume)
	assert.Equal(t, release.AssumeIfNoneFound, stds[1].Assume)
	assert.Equal(t, release.Tags{"720p", "HDTV"}, stds[0].Tags)

	rules := cfg.CompatRules()
	require.Len(t, rules, 1)
	assert.Equal(t, "cross-group DIMENSION->LOL", rules[0].Name())

	correctors := cfg.Correctors()
	require.Len(t, correctors, 2)
}
