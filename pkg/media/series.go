package media

import "strings"

// Series is a TV series. Its name is the identity key, compared
// case-insensitively. A Series keeps back-references to the seasons and
// episodes created through it; those collections are not part of its
// identity.
type Series struct {
	Name      string
	Title     string
	Type      SeriesType
	State     string
	AirDate   PartialDate
	Aliases   []string
	Genres    []string
	Languages []string
	Countries []string

	seasons  []*Season
	episodes []*Episode
}

// NewSeries creates a series with the given name and type.
func NewSeries(name string, typ SeriesType) *Series {
	return &Series{Name: name, Type: typ}
}

func (*Series) item() {}

// Equal reports whether two series share the same case-insensitive name.
// A nil series only equals another nil series.
func (s *Series) Equal(o *Series) bool {
	if s == nil || o == nil {
		return s == o
	}
	return strings.EqualFold(s.Name, o.Name)
}

// Compare orders series by case-insensitive name, nil first.
func (s *Series) Compare(o *Series) int {
	if s == nil || o == nil {
		switch {
		case s == o:
			return 0
		case s == nil:
			return -1
		default:
			return 1
		}
	}
	return strings.Compare(strings.ToLower(s.Name), strings.ToLower(o.Name))
}

// Seasons returns the seasons created through this series, in creation order.
func (s *Series) Seasons() []*Season { return s.seasons }

// Episodes returns the episodes created through this series, in creation order.
func (s *Series) Episodes() []*Episode { return s.episodes }

// NewSeason creates a numbered season linked back to this series.
func (s *Series) NewSeason(number int) *Season {
	sn := &Season{Series: s, Number: number}
	s.seasons = append(s.seasons, sn)
	return sn
}

// NewTitledSeason creates an unnumbered, titled season linked back to
// this series.
func (s *Series) NewTitledSeason(title string) *Season {
	sn := &Season{Series: s, Title: title}
	s.seasons = append(s.seasons, sn)
	return sn
}

// NewEpisode creates a bare episode belonging to this series. Callers
// populate numbering, date and title afterwards.
func (s *Series) NewEpisode() *Episode {
	e := &Episode{Series: s}
	s.episodes = append(s.episodes, e)
	return e
}

// NewSeasonedEpisode creates an episode numbered within the given season.
// The season must belong to this series.
func (s *Series) NewSeasonedEpisode(season *Season, numInSeason int) (*Episode, error) {
	e := s.NewEpisode()
	e.NumInSeason = numInSeason
	if season != nil {
		if err := e.SetSeason(season); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// NewMiniSeriesEpisode creates an episode numbered within the series run.
func (s *Series) NewMiniSeriesEpisode(numInSeries int) *Episode {
	e := s.NewEpisode()
	e.NumInSeries = numInSeries
	return e
}

// NewDatedEpisode creates an episode identified by air date.
func (s *Series) NewDatedEpisode(date PartialDate) *Episode {
	e := s.NewEpisode()
	e.Date = date
	return e
}
