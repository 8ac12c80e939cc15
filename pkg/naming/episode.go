package naming

import (
	"fmt"

	"github.com/vmunix/scener/pkg/media"
)

// SeasonedEpisodeNamer renders episodes of season-organized series,
// e.g. "Psych S03E07".
//
// The branching precedence is load-bearing and must not be reordered:
// season number wins over season title, which wins over missing season
// info; within each branch the episode number wins over the episode
// title, which wins over the "Exx" placeholder. Real catalogs mix all
// of these shapes and downstream consumers depend on the exact output.
type SeasonedEpisodeNamer struct {
	Profile *Profile
}

func (n *SeasonedEpisodeNamer) Name(svc *Service, v any, p Params) (string, error) {
	e, ok := v.(*media.Episode)
	if !ok {
		return "", fmt.Errorf("seasoned episode namer: unsupported type %T", v)
	}
	prof := n.Profile
	b := NewBuilder(prof)

	appendSeriesName(b, prof, e.Series, p)

	season := e.Season()
	includeSeason := p.Bool(ParamIncludeSeason, true)
	switch {
	case season == nil:
		switch {
		case e.IsNumberedInSeries():
			b.Append(PropEpisode, prof.FormatSeriesNum(e.NumInSeries))
		case e.IsTitled():
			b.Append(PropTitle, e.Title)
		default:
			b.Append(PropEpisode, prof.EpisodePlaceholder)
		}
	case season.IsNumbered():
		if includeSeason {
			b.Append(PropSeason, prof.FormatSeason(season.Number))
			if p.Bool(ParamAlwaysIncludeSeasonTitle, false) && season.IsTitled() {
				b.Append(PropSeasonTitle, season.Title)
			}
		}
		appendEpisodePart(b, prof, e, p)
	case season.IsTitled():
		if includeSeason {
			b.Append(PropSeasonTitle, season.Title)
		}
		appendEpisodePart(b, prof, e, p)
	default:
		// season present but carries neither number nor title
		if includeSeason {
			b.Append(PropSeason, prof.SeasonPlaceholder)
		}
		appendEpisodePart(b, prof, e, p)
	}

	return b.String(), nil
}

// appendEpisodePart emits the episode fragment within a season branch:
// number first, then title, then the placeholder.
func appendEpisodePart(b *Builder, prof *Profile, e *media.Episode, p Params) {
	switch {
	case e.IsNumberedInSeason():
		b.Append(PropEpisode, prof.FormatEpisode(e.NumInSeason))
		if p.Bool(ParamAlwaysIncludeEpisodeTitle, false) && e.IsTitled() {
			b.Append(PropTitle, e.Title)
		}
	case e.IsTitled():
		b.Append(PropTitle, e.Title)
	default:
		b.Append(PropEpisode, prof.EpisodePlaceholder)
	}
}

func appendSeriesName(b *Builder, prof *Profile, s *media.Series, p Params) {
	if !p.Bool(ParamIncludeSeries, true) {
		return
	}
	name := prof.UnnamedSeries
	if s != nil && s.Name != "" {
		name = s.Name
	}
	b.Append(PropSeries, name)
}

// MiniSeriesEpisodeNamer renders episodes numbered across the whole
// series run, e.g. "Band of Brothers E05".
type MiniSeriesEpisodeNamer struct {
	Profile *Profile
}

func (n *MiniSeriesEpisodeNamer) Name(svc *Service, v any, p Params) (string, error) {
	e, ok := v.(*media.Episode)
	if !ok {
		return "", fmt.Errorf("miniseries episode namer: unsupported type %T", v)
	}
	prof := n.Profile
	b := NewBuilder(prof)

	appendSeriesName(b, prof, e.Series, p)

	switch {
	case e.IsNumberedInSeries():
		b.Append(PropEpisode, prof.FormatSeriesNum(e.NumInSeries))
		if p.Bool(ParamAlwaysIncludeEpisodeTitle, false) && e.IsTitled() {
			b.Append(PropTitle, e.Title)
		}
	case e.IsTitled():
		b.Append(PropTitle, e.Title)
	default:
		b.Append(PropEpisode, prof.EpisodePlaceholder)
	}

	return b.String(), nil
}

// DatedEpisodeNamer renders episodes of daily shows, e.g.
// "The Daily Show 2009 03 07". Each date component is emitted only when
// the underlying date actually carries it: a bare year never prints
// "00 00".
type DatedEpisodeNamer struct {
	Profile *Profile
}

func (n *DatedEpisodeNamer) Name(svc *Service, v any, p Params) (string, error) {
	e, ok := v.(*media.Episode)
	if !ok {
		return "", fmt.Errorf("dated episode namer: unsupported type %T", v)
	}
	prof := n.Profile
	b := NewBuilder(prof)

	appendSeriesName(b, prof, e.Series, p)

	if !e.Date.IsZero() {
		b.Append(PropYear, fmt.Sprintf("%04d", e.Date.Year))
		if e.Date.HasMonth() {
			b.Append(PropMonth, fmt.Sprintf("%02d", e.Date.Month))
		}
		if e.Date.HasDay() {
			b.Append(PropDay, fmt.Sprintf("%02d", e.Date.Day))
		}
		if p.Bool(ParamAlwaysIncludeEpisodeTitle, false) && e.IsTitled() {
			b.Append(PropTitle, e.Title)
		}
	} else if e.IsTitled() {
		b.Append(PropTitle, e.Title)
	} else {
		b.Append(PropEpisode, prof.EpisodePlaceholder)
	}

	return b.String(), nil
}
