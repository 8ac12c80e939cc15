package naming

import (
	"fmt"

	"github.com/vmunix/scener/pkg/media"
)

// MultiEpisodeNamer renders a batch of episodes. The first episode is
// rendered in full through the service; the remainder is compressed or
// appended depending on what the episodes share. The fallback order is
// graduated and must be evaluated exactly in this order, since a batch
// can satisfy several of the weaker conditions at once:
//
//  1. one series, one season, all numbered in season: consecutive-range
//     compression over the season numbering
//  2. one series, no seasons at all, all numbered in series: the same
//     compression over the series numbering
//  3. one series but differing seasons: each further episode in full
//     with the series name suppressed
//  4. no common series: each further episode in full
type MultiEpisodeNamer struct {
	Profile *Profile
}

func (n *MultiEpisodeNamer) Name(svc *Service, v any, p Params) (string, error) {
	m, ok := v.(*media.MultiEpisode)
	if !ok {
		return "", fmt.Errorf("multi-episode namer: unsupported type %T", v)
	}
	if len(m.Episodes) == 0 {
		return "", fmt.Errorf("multi-episode namer: empty batch")
	}

	first, err := svc.Name(m.Episodes[0], p)
	if err != nil {
		return "", err
	}
	if len(m.Episodes) == 1 {
		return first, nil
	}

	prof := n.Profile
	b := NewBuilder(prof)
	b.Append(PropEpisode, first)

	series := m.CommonSeries()
	season, seasonShared := m.CommonSeason()

	switch {
	case series != nil && seasonShared && season != nil && m.AllNumberedInSeason():
		n.appendRuns(b, SplitConsecutive(m.NumbersInSeason()), prof.FormatEpisode)
	case series != nil && seasonShared && season == nil && m.AllNumberedInSeries():
		n.appendRuns(b, SplitConsecutive(m.NumbersInSeries()), prof.FormatSeriesNum)
	case series != nil:
		// differing seasons: series name already printed once
		rest := p.With(ParamIncludeSeries, false)
		for _, e := range m.Episodes[1:] {
			name, err := svc.Name(e, rest)
			if err != nil {
				return "", err
			}
			b.AppendCtx(PropEpisode, CtxAddition, name)
		}
	default:
		for _, e := range m.Episodes[1:] {
			name, err := svc.Name(e, p)
			if err != nil {
				return "", err
			}
			b.AppendCtx(PropEpisode, CtxAddition, name)
		}
	}

	return b.String(), nil
}

// appendRuns emits the compressed form of the consecutive runs. The
// leading number of the first run is omitted: it was already printed as
// part of the fully rendered first episode. A one-element run prints a
// single number, a two-element run both numbers with the addition
// separator, a longer run only first and last with the range separator.
func (n *MultiEpisodeNamer) appendRuns(b *Builder, runs [][]int, format func(int) string) {
	for i, run := range runs {
		if i == 0 {
			switch {
			case len(run) == 2:
				b.AppendCtx(PropEpisode, CtxAddition, format(run[1]))
			case len(run) > 2:
				b.AppendCtx(PropEpisode, CtxRange, format(run[len(run)-1]))
			}
			continue
		}
		b.AppendCtx(PropEpisode, CtxAddition, format(run[0]))
		switch {
		case len(run) == 2:
			b.AppendCtx(PropEpisode, CtxAddition, format(run[1]))
		case len(run) > 2:
			b.AppendCtx(PropEpisode, CtxRange, format(run[len(run)-1]))
		}
	}
}
