// Package reconcile decides which retrieved releases match a query,
// which are compatible substitutes, and which can be guessed from
// standard release templates.
package reconcile

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/scener/pkg/media"
	"github.com/vmunix/scener/pkg/release"
)

//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/vmunix/scener/internal/reconcile Source

// Source retrieves candidate releases for a media item from an external
// metadata database. Implementations are network clients and treated as
// black boxes returning raw candidates.
type Source interface {
	// Name identifies the source in logs and provenance.
	Name() string
	// Query returns candidate releases for the media item.
	Query(ctx context.Context, item media.Item) ([]*release.Release, error)
}

// QueryAll queries every source concurrently and joins all results,
// preserving source order in the merged output. A failing source
// contributes an empty result set and is logged; it never fails the
// overall operation.
func QueryAll(ctx context.Context, sources []Source, item media.Item, log *slog.Logger) []*release.Release {
	results := make([][]*release.Release, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			rels, err := src.Query(ctx, item)
			if err != nil {
				log.Warn("source query failed", "source", src.Name(), "error", err)
				return nil
			}
			results[i] = rels
			return nil
		})
	}
	// Join, not select-first: wait for every outstanding lookup.
	_ = g.Wait()

	var merged []*release.Release
	for _, rels := range results {
		merged = append(merged, rels...)
	}
	return merged
}
