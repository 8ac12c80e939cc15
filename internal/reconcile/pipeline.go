package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vmunix/scener/pkg/naming"
	"github.com/vmunix/scener/pkg/release"
)

// Config wires a Pipeline. Rule sets are ordered; given the same inputs
// and the same ordered rule sets the pipeline output is byte-identical.
type Config struct {
	Sources     []Source
	Correctors  []Corrector
	CompatRules []CompatibilityRule
	Standards   []release.StandardRelease
	MetaTags    release.Tags
	Guessing    bool
	Logger      *slog.Logger
}

// Pipeline reconciles retrieved candidate releases against a query
// release: deduplicate, enrich, standardize, match, guess, and surface
// compatible substitutes. A Pipeline holds no per-run state and is safe
// for concurrent use.
type Pipeline struct {
	svc         *naming.Service
	sources     []Source
	correctors  []Corrector
	compatRules []CompatibilityRule
	standards   []release.StandardRelease
	metaTags    release.Tags
	guessing    bool
	log         *slog.Logger
}

// New creates a pipeline rendering names through the given service.
// The same-group compatibility rule is implicitly available ahead of
// any configured rules.
func New(svc *naming.Service, cfg Config) *Pipeline {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		svc:         svc,
		sources:     cfg.Sources,
		correctors:  cfg.Correctors,
		compatRules: append([]CompatibilityRule{SameGroupRule{}}, cfg.CompatRules...),
		standards:   cfg.Standards,
		metaTags:    cfg.MetaTags,
		guessing:    cfg.Guessing,
		log:         log,
	}
}

// Run retrieves candidates from every configured source and reconciles
// them against the query.
func (p *Pipeline) Run(ctx context.Context, query *release.Release) (*Result, error) {
	candidates := QueryAll(ctx, p.sources, query.FirstMedia(), p.log)
	return p.Reconcile(ctx, query, candidates)
}

// Reconcile runs the pipeline stages over the given candidates.
// Cancellation is cooperative: the context is checked between stages,
// and a canceled run returns the context error with no partial result.
func (p *Pipeline) Reconcile(ctx context.Context, query *release.Release, candidates []*release.Release) (*Result, error) {
	queryName, err := p.mediaName(query)
	if err != nil {
		return nil, fmt.Errorf("name query media: %w", err)
	}

	// Stage 1: distinct by rendered name, first occurrence wins.
	candidates = p.distinctByName(candidates)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: enrich from the raw release name.
	enriched := make([]*release.Release, len(candidates))
	for i, c := range candidates {
		enriched[i] = p.enrich(c)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: standardize.
	result := &Result{}
	for _, c := range enriched {
		for _, corr := range p.correctors {
			changes := corr.Apply(c)
			result.Changes = append(result.Changes, changes...)
			for _, ch := range changes {
				p.log.Debug("standardized candidate", "release", c.Name, "change", ch.String())
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: match against the query.
	var matched []*release.Release
	for _, c := range enriched {
		ok, err := p.matches(query, queryName, c)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, c)
			result.Items = append(result.Items, Item{Release: c, Method: Matched})
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 5: guess, only when matching found nothing.
	if len(matched) == 0 && p.guessing {
		for _, g := range p.Guess(query) {
			result.Items = append(result.Items, Item{Release: g, Method: Guessed})
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 6: compatibility over the full enriched pool. Only
	// candidates packaging the query's media are substitutable; a
	// same-group release of different content is not.
	accepted := result.Accepted()
	for _, c := range enriched {
		if containsRelease(accepted, c) {
			continue
		}
		name, err := p.mediaName(c)
		if err != nil || !strings.EqualFold(name, queryName) {
			continue
		}
		for _, rule := range p.compatRules {
			if rule.Compatible(c, accepted) {
				p.log.Debug("compatible release", "release", c.Name, "rule", rule.Name())
				result.Items = append(result.Items, Item{Release: c, Method: Compatible, Rule: rule.Name()})
				break
			}
		}
	}

	return result, nil
}

// Guess synthesizes a release per standard template: the query's media
// combined with the template's tags and group, with the query's meta
// tags transferred onto the synthesized release.
func (p *Pipeline) Guess(query *release.Release) []*release.Release {
	guesses := make([]*release.Release, 0, len(p.standards))
	for _, std := range p.standards {
		guesses = append(guesses, p.guessFrom(query, std))
	}
	return guesses
}

// GuessAssumed synthesizes releases only from templates marked
// AssumeAlways. These are offered even when no retrieval step has run.
func (p *Pipeline) GuessAssumed(query *release.Release) []*release.Release {
	var guesses []*release.Release
	for _, std := range p.standards {
		if std.Assume == release.AssumeAlways {
			guesses = append(guesses, p.guessFrom(query, std))
		}
	}
	return guesses
}

func (p *Pipeline) guessFrom(query *release.Release, std release.StandardRelease) *release.Release {
	g := release.New(query.Media...)
	g.Tags = append(append(release.Tags(nil), std.Tags...), query.Tags.MetaOnly(p.metaTags)...)
	g.Group = std.Group
	return g
}

// matches applies the three-way equality of the filter stage: rendered
// media name (case-insensitive), tags modulo declared meta tags, and
// group.
func (p *Pipeline) matches(query *release.Release, queryName string, c *release.Release) (bool, error) {
	name, err := p.mediaName(c)
	if err != nil {
		var nerr *naming.NamingError
		if errors.As(err, &nerr) {
			p.log.Debug("cannot name candidate media", "release", c.Name, "error", err)
			return false, nil
		}
		return false, err
	}
	if !strings.EqualFold(name, queryName) {
		return false, nil
	}
	if !c.Tags.EqualIgnoringMeta(query.Tags, p.metaTags) {
		return false, nil
	}
	return c.Group.Equal(query.Group), nil
}

// mediaName renders a release's media materials through the naming
// service. A bare release over the same materials renders to just the
// dotted media name, since it carries no tags and no group.
func (p *Pipeline) mediaName(r *release.Release) (string, error) {
	if len(r.Media) == 0 {
		return "", nil
	}
	return p.svc.Name(release.New(r.Media...), nil)
}

func (p *Pipeline) distinctByName(candidates []*release.Release) []*release.Release {
	seen := make(map[string]bool, len(candidates))
	out := make([]*release.Release, 0, len(candidates))
	for _, c := range candidates {
		key := nameKey(c.Name)
		if key == "" || !seen[key] {
			seen[key] = true
			out = append(out, c)
		}
	}
	return out
}

// nameKey folds the spelling variants of one release name into a single
// dedup key: sources disagree on dots versus spaces and on case, but
// "Psych.S03E07-DIMENSION" and "psych s03e07-DIMENSION" are the same
// release.
func nameKey(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, ".", " ")
	return strings.Join(strings.Fields(s), " ")
}

func containsRelease(rels []*release.Release, r *release.Release) bool {
	for _, x := range rels {
		if x == r {
			return true
		}
	}
	return false
}
