package reconcile

import "github.com/vmunix/scener/pkg/release"

// Method records how a surfaced release entered the result set.
type Method int

const (
	// Matched releases were retrieved and equal the query.
	Matched Method = iota
	// Guessed releases were synthesized from a standard template.
	Guessed
	// Compatible releases were surfaced by a compatibility rule.
	Compatible
)

func (m Method) String() string {
	switch m {
	case Guessed:
		return "guessed"
	case Compatible:
		return "compatible"
	default:
		return "matched"
	}
}

// Item is one surfaced release with its provenance: how it was accepted
// and, for compatible releases, which rule accepted it.
type Item struct {
	Release *release.Release
	Method  Method
	Rule    string // compatibility rule name; empty otherwise
}

// Result is the outcome of one reconciliation run. It is always a
// best-effort set: an empty result is a valid outcome, not an error.
type Result struct {
	Items []Item
	// Changes lists every standardization applied across candidates.
	Changes []Change
}

// Accepted returns the matched-or-guessed releases, in result order.
func (r *Result) Accepted() []*release.Release {
	var out []*release.Release
	for _, it := range r.Items {
		if it.Method != Compatible {
			out = append(out, it.Release)
		}
	}
	return out
}
