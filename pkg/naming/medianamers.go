package naming

import (
	"fmt"
	"strconv"

	"github.com/vmunix/scener/pkg/media"
)

// SeriesNamer renders a series name, or the unnamed-series placeholder.
type SeriesNamer struct {
	Profile *Profile
}

func (n *SeriesNamer) Name(svc *Service, v any, p Params) (string, error) {
	s, ok := v.(*media.Series)
	if !ok {
		return "", fmt.Errorf("series namer: unsupported type %T", v)
	}
	if s.Name == "" {
		return n.Profile.UnnamedSeries, nil
	}
	return s.Name, nil
}

// SeasonNamer renders a season: series name plus season number, title
// or placeholder, with the same number-over-title precedence as the
// seasoned episode namer.
type SeasonNamer struct {
	Profile *Profile
}

func (n *SeasonNamer) Name(svc *Service, v any, p Params) (string, error) {
	s, ok := v.(*media.Season)
	if !ok {
		return "", fmt.Errorf("season namer: unsupported type %T", v)
	}
	prof := n.Profile
	b := NewBuilder(prof)

	appendSeriesName(b, prof, s.Series, p)

	switch {
	case s.IsNumbered():
		b.Append(PropSeason, prof.FormatSeason(s.Number))
		if p.Bool(ParamAlwaysIncludeSeasonTitle, false) && s.IsTitled() {
			b.Append(PropSeasonTitle, s.Title)
		}
	case s.IsTitled():
		b.Append(PropSeasonTitle, s.Title)
	default:
		b.Append(PropSeason, prof.SeasonPlaceholder)
	}

	return b.String(), nil
}

// MovieNamer renders a movie name, with its year when known.
type MovieNamer struct {
	Profile *Profile
}

func (n *MovieNamer) Name(svc *Service, v any, p Params) (string, error) {
	m, ok := v.(*media.Movie)
	if !ok {
		return "", fmt.Errorf("movie namer: unsupported type %T", v)
	}
	b := NewBuilder(n.Profile)
	b.Append(PropMedia, m.Name)
	if m.Year != 0 {
		b.Append(PropYear, strconv.Itoa(m.Year))
	}
	return b.String(), nil
}
