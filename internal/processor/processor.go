// Package processor runs reconciliation requests through a single-worker
// queue: one logical item is fully pipelined end-to-end before the next
// one starts.
package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/scener/internal/history"
	"github.com/vmunix/scener/internal/reconcile"
	"github.com/vmunix/scener/pkg/naming"
	"github.com/vmunix/scener/pkg/release"
)

// ErrClosed is returned by Submit after the processor has shut down.
var ErrClosed = errors.New("processor closed")

type job struct {
	item  string
	query *release.Release
}

// Processor owns the queue and the single worker. Construct with New,
// start with Run, feed with Submit.
type Processor struct {
	pipeline *reconcile.Pipeline
	svc      *naming.Service
	store    *history.Store // nil disables run recording
	log      *slog.Logger
	jobs     chan job
	done     chan struct{}
	close    sync.Once
}

// New creates a processor with the given queue capacity.
func New(pipeline *reconcile.Pipeline, svc *naming.Service, store *history.Store, queueSize int, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{
		pipeline: pipeline,
		svc:      svc,
		store:    store,
		log:      log.With("component", "processor"),
		jobs:     make(chan job, queueSize),
		done:     make(chan struct{}),
	}
}

// Close stops accepting new jobs. Run drains what is already queued and
// then returns.
func (p *Processor) Close() {
	p.close.Do(func() { close(p.done) })
}

// Submit parses a release file name into a query and enqueues it.
// Blocks while the queue is full; fails when the name cannot be parsed,
// the context is canceled or the processor has shut down.
func (p *Processor) Submit(ctx context.Context, item string) error {
	info, err := release.Parse(item)
	if err != nil {
		return fmt.Errorf("submit %q: %w", item, err)
	}
	query := release.New(reconcile.MediaFromInfo(info)...)
	query.Name = item
	query.Tags = info.Tags
	query.Group = info.Group

	select {
	case p.jobs <- job{item: item, query: query}:
		return nil
	case <-p.done:
		return fmt.Errorf("submit %q: %w", item, ErrClosed)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes queued jobs one at a time until the context is canceled
// or Close has been called and the queue is drained. A job already
// started is finished; on cancellation queued jobs are dropped.
func (p *Processor) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case j := <-p.jobs:
				p.process(ctx, j)
			case <-p.done:
				// drain what was accepted before the close
				for {
					select {
					case j := <-p.jobs:
						p.process(ctx, j)
					default:
						return nil
					}
				}
			}
		}
	})
	return g.Wait()
}

func (p *Processor) process(ctx context.Context, j job) {
	started := time.Now()
	result, err := p.pipeline.Run(ctx, j.query)
	if err != nil {
		p.log.Warn("reconciliation failed", "item", j.item, "error", err)
		return
	}
	p.log.Info("reconciliation finished", "item", j.item, "surfaced", len(result.Items), "took", time.Since(started))

	if p.store == nil {
		return
	}
	if err := p.record(j, started, result); err != nil {
		p.log.Warn("record run failed", "item", j.item, "error", err)
	}
}

func (p *Processor) record(j job, started time.Time, result *reconcile.Result) error {
	queryName, err := p.svc.Name(j.query, nil)
	if err != nil {
		return fmt.Errorf("name query: %w", err)
	}

	surfaced := make([]history.Surfaced, 0, len(result.Items))
	for _, it := range result.Items {
		name := it.Release.Name
		if name == "" {
			if name, err = p.svc.Name(it.Release, nil); err != nil {
				return fmt.Errorf("name surfaced release: %w", err)
			}
		}
		surfaced = append(surfaced, history.Surfaced{
			Name:   name,
			Method: it.Method.String(),
			Rule:   it.Rule,
		})
	}

	corrections := make([]string, 0, len(result.Changes))
	for _, ch := range result.Changes {
		corrections = append(corrections, ch.String())
	}

	_, err = p.store.Record(history.Run{
		Item:       j.item,
		QueryName:  queryName,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}, surfaced, corrections)
	return err
}
