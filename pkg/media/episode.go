package media

import (
	"fmt"
	"strings"
)

// Episode is a single episode of a series. All numbering fields are
// optional: zero means unset. Seasoned episodes carry NumInSeason,
// mini-series episodes NumInSeries, dated episodes a Date. An episode
// may belong to a season of its own series; use SetSeason to assign one.
type Episode struct {
	Series      *Series
	NumInSeries int
	NumInSeason int
	Date        PartialDate
	Title       string
	Special     bool

	season *Season
}

func (*Episode) item() {}

// Season returns the season this episode belongs to, or nil.
func (e *Episode) Season() *Season { return e.season }

// SetSeason assigns the episode to a season. The season must belong to
// the same series as the episode; a mismatch returns ErrDifferentSeries.
func (e *Episode) SetSeason(s *Season) error {
	if s != nil && !s.Series.Equal(e.Series) {
		return fmt.Errorf("set season on episode of %q: %w", seriesName(e.Series), ErrDifferentSeries)
	}
	e.season = s
	return nil
}

// IsNumberedInSeason reports whether the episode has a number within its season.
func (e *Episode) IsNumberedInSeason() bool { return e.NumInSeason != 0 }

// IsNumberedInSeries reports whether the episode has a number within its series.
func (e *Episode) IsNumberedInSeries() bool { return e.NumInSeries != 0 }

// IsTitled reports whether the episode has a title.
func (e *Episode) IsTitled() bool { return e.Title != "" }

// IsDated reports whether the episode carries an air date.
func (e *Episode) IsDated() bool { return !e.Date.IsZero() }

// Equal reports whether two episodes compare equal under Compare.
func (e *Episode) Equal(o *Episode) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.Compare(o) == 0
}

// Compare orders episodes by (series, season, number-in-season,
// number-in-series, date, title), with unset values sorting first.
// Season and number-in-season take priority over number-in-series;
// episodes without any numbering fall back to date, then title.
func (e *Episode) Compare(o *Episode) int {
	if e == nil || o == nil {
		switch {
		case e == o:
			return 0
		case e == nil:
			return -1
		default:
			return 1
		}
	}
	if c := e.Series.Compare(o.Series); c != 0 {
		return c
	}
	if c := e.season.Compare(o.season); c != 0 {
		return c
	}
	if c := cmpInt(e.NumInSeason, o.NumInSeason); c != 0 {
		return c
	}
	if c := cmpInt(e.NumInSeries, o.NumInSeries); c != 0 {
		return c
	}
	if c := e.Date.Compare(o.Date); c != 0 {
		return c
	}
	return strings.Compare(strings.ToLower(e.Title), strings.ToLower(o.Title))
}

func seriesName(s *Series) string {
	if s == nil {
		return ""
	}
	return s.Name
}
