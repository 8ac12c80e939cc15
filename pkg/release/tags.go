package release

import "strings"

// Tags is an ordered list of release tags.
type Tags []Tag

// ParseTags splits a space- or dot-separated tag list.
func ParseTags(s string) Tags {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '.'
	})
	tags := make(Tags, 0, len(fields))
	for _, f := range fields {
		tags = append(tags, Tag(f))
	}
	return tags
}

// Contains reports whether the list contains the tag (case-insensitive).
func (ts Tags) Contains(t Tag) bool {
	for _, x := range ts {
		if x.Equal(t) {
			return true
		}
	}
	return false
}

// Equal reports whether two tag lists are element-wise equal, ignoring
// case but respecting order.
func (ts Tags) Equal(o Tags) bool {
	if len(ts) != len(o) {
		return false
	}
	for i := range ts {
		if !ts[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// String joins the tags with dots, the scene separator.
func (ts Tags) String() string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = string(t)
	}
	return strings.Join(parts, ".")
}

// EqualIgnoringMeta reports whether two tag lists are equal once tags
// declared as meta (PROPER, REPACK, ...) are removed from both sides.
// A meta tag present on only one side is tolerated; any other
// difference is not.
func (ts Tags) EqualIgnoringMeta(o Tags, meta Tags) bool {
	return ts.WithoutMeta(meta).Equal(o.WithoutMeta(meta))
}

// WithoutMeta returns the tags with all declared meta tags removed,
// preserving order.
func (ts Tags) WithoutMeta(meta Tags) Tags {
	out := make(Tags, 0, len(ts))
	for _, t := range ts {
		if !meta.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// MetaOnly returns just the declared meta tags of the list, in order.
func (ts Tags) MetaOnly(meta Tags) Tags {
	out := make(Tags, 0, 2)
	for _, t := range ts {
		if meta.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}
