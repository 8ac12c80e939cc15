// Package release provides types for representing, parsing and comparing
// scene releases: a packaged set of media items plus tags and a group.
package release

import (
	"strings"

	"github.com/vmunix/scener/pkg/media"
)

// Tag is a single release tag such as "720p", "HDTV" or "PROPER".
// Tags compare case-insensitively.
type Tag string

// Equal reports whether two tags are equal, ignoring case.
func (t Tag) Equal(o Tag) bool {
	return strings.EqualFold(string(t), string(o))
}

// Group is a release group name. Groups compare case-insensitively.
type Group string

// Equal reports whether two groups are equal, ignoring case.
func (g Group) Equal(o Group) bool {
	return strings.EqualFold(string(g), string(o))
}

// Release is a scene release: one or more media items, an ordered tag
// list, and optionally a group and a source label. Name holds the raw
// release name as retrieved; it may be empty for query releases built
// from structured metadata.
type Release struct {
	Name   string
	Media  []media.Item
	Tags   Tags
	Group  Group
	Source string
}

// New creates a release over the given media items.
func New(items ...media.Item) *Release {
	return &Release{Media: items}
}

// FirstMedia returns the first packaged media item, or nil.
func (r *Release) FirstMedia() media.Item {
	if len(r.Media) == 0 {
		return nil
	}
	return r.Media[0]
}

// Assume is the existence policy of a standard release template.
type Assume int

const (
	// AssumeIfNoneFound offers the template only when matching found nothing.
	AssumeIfNoneFound Assume = iota
	// AssumeAlways offers the template unconditionally, even without any
	// retrieval having run.
	AssumeAlways
)

func (a Assume) String() string {
	if a == AssumeAlways {
		return "always"
	}
	return "if-none-found"
}

// StandardRelease is a template of tags and group assumed to exist for
// any given media, used when guessing releases.
type StandardRelease struct {
	Tags   Tags
	Group  Group
	Assume Assume
}
