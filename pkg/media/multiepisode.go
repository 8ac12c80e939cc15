package media

import "sort"

// MultiEpisode is a transient grouping of episodes used during naming
// and matching of multi-episode batches. It is not itself a media item:
// a release of several episodes lists them individually as materials.
type MultiEpisode struct {
	Episodes []*Episode
}

// NewMultiEpisode groups the given episodes, sorted into canonical
// episode order.
func NewMultiEpisode(eps ...*Episode) *MultiEpisode {
	m := &MultiEpisode{Episodes: append([]*Episode(nil), eps...)}
	sort.SliceStable(m.Episodes, func(i, j int) bool {
		return m.Episodes[i].Compare(m.Episodes[j]) < 0
	})
	return m
}

// CommonSeries returns the series shared by every episode, or nil when
// the group is empty or spans multiple series.
func (m *MultiEpisode) CommonSeries() *Series {
	if len(m.Episodes) == 0 {
		return nil
	}
	first := m.Episodes[0].Series
	for _, e := range m.Episodes[1:] {
		if !e.Series.Equal(first) {
			return nil
		}
	}
	return first
}

// CommonSeason returns the season shared by every episode. The second
// return is false when the group is empty or seasons differ. A shared
// nil season (no episode has one) returns (nil, true).
func (m *MultiEpisode) CommonSeason() (*Season, bool) {
	if len(m.Episodes) == 0 {
		return nil, false
	}
	first := m.Episodes[0].Season()
	for _, e := range m.Episodes[1:] {
		s := e.Season()
		if s == nil && first == nil {
			continue
		}
		if s == nil || first == nil || !s.Equal(first) {
			return nil, false
		}
	}
	return first, true
}

// AllNumberedInSeason reports whether every episode carries a
// number-in-season.
func (m *MultiEpisode) AllNumberedInSeason() bool {
	if len(m.Episodes) == 0 {
		return false
	}
	for _, e := range m.Episodes {
		if !e.IsNumberedInSeason() {
			return false
		}
	}
	return true
}

// AllNumberedInSeries reports whether every episode carries a
// number-in-series.
func (m *MultiEpisode) AllNumberedInSeries() bool {
	if len(m.Episodes) == 0 {
		return false
	}
	for _, e := range m.Episodes {
		if !e.IsNumberedInSeries() {
			return false
		}
	}
	return true
}

// NumbersInSeason returns each episode's number-in-season, in group order.
func (m *MultiEpisode) NumbersInSeason() []int {
	nums := make([]int, len(m.Episodes))
	for i, e := range m.Episodes {
		nums[i] = e.NumInSeason
	}
	return nums
}

// NumbersInSeries returns each episode's number-in-series, in group order.
func (m *MultiEpisode) NumbersInSeries() []int {
	nums := make([]int, len(m.Episodes))
	for i, e := range m.Episodes {
		nums[i] = e.NumInSeries
	}
	return nums
}
