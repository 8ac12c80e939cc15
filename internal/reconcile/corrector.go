package reconcile

import (
	"fmt"

	"github.com/vmunix/scener/pkg/release"
)

// Change records one correction applied during standardization, with
// enough detail to explain the transformation afterwards.
type Change struct {
	Corrector string
	Field     string
	From      string
	To        string
}

func (c Change) String() string {
	return fmt.Sprintf("%s: %s %q -> %q", c.Corrector, c.Field, c.From, c.To)
}

// Corrector is a standardization rule applied to each enriched
// candidate. Apply mutates the release in place and returns the list of
// changes it made; a no-op returns nil.
type Corrector interface {
	Apply(r *release.Release) []Change
}

// GroupCorrector normalizes a group's display name, e.g. "DIM" to
// "DIMENSION".
type GroupCorrector struct {
	From release.Group
	To   release.Group
}

func (c *GroupCorrector) Apply(r *release.Release) []Change {
	if !r.Group.Equal(c.From) || r.Group == c.To {
		return nil
	}
	from := r.Group
	r.Group = c.To
	return []Change{{Corrector: "group", Field: "group", From: string(from), To: string(c.To)}}
}

// TagCorrector rewrites one tag spelling wherever it appears, e.g.
// "WEB-DL" to "WEBDL".
type TagCorrector struct {
	From release.Tag
	To   release.Tag
}

func (c *TagCorrector) Apply(r *release.Release) []Change {
	var changes []Change
	for i, t := range r.Tags {
		if t.Equal(c.From) && t != c.To {
			changes = append(changes, Change{Corrector: "tag", Field: "tags", From: string(t), To: string(c.To)})
			r.Tags[i] = c.To
		}
	}
	return changes
}
