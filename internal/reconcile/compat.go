package reconcile

import (
	"fmt"

	"github.com/vmunix/scener/pkg/release"
)

// CompatibilityRule declares when a release that is not name-identical
// to the query is still an acceptable substitute. Rules see the full
// accepted set (matched or guessed) as reference.
type CompatibilityRule interface {
	// Name identifies the rule in provenance.
	Name() string
	// Compatible reports whether the candidate is substitutable given
	// the accepted reference releases.
	Compatible(candidate *release.Release, accepted []*release.Release) bool
}

// SameGroupRule accepts a candidate released by the same group as any
// accepted release. Releases by one group share source timing, so a
// different cut by the same group is interchangeable. This rule is
// always implicitly available.
type SameGroupRule struct{}

func (SameGroupRule) Name() string { return "same-group" }

func (SameGroupRule) Compatible(candidate *release.Release, accepted []*release.Release) bool {
	if candidate.Group == "" {
		return false
	}
	for _, a := range accepted {
		if a.Group != "" && candidate.Group.Equal(a.Group) {
			return true
		}
	}
	return false
}

// CrossGroupRule declares that releases by Substitute stand in for
// releases by Source. When Symmetric, the declaration also holds in the
// opposite direction.
type CrossGroupRule struct {
	Source     release.Group
	Substitute release.Group
	Symmetric  bool
}

func (r CrossGroupRule) Name() string {
	return fmt.Sprintf("cross-group %s->%s", r.Source, r.Substitute)
}

func (r CrossGroupRule) Compatible(candidate *release.Release, accepted []*release.Release) bool {
	for _, a := range accepted {
		if a.Group.Equal(r.Source) && candidate.Group.Equal(r.Substitute) {
			return true
		}
		if r.Symmetric && a.Group.Equal(r.Substitute) && candidate.Group.Equal(r.Source) {
			return true
		}
	}
	return false
}
