package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesEqual(t *testing.T) {
	psych := NewSeries("Psych", TypeSeasoned)

	tests := []struct {
		name string
		a, b *Series
		want bool
	}{
		{"same pointer", psych, psych, true},
		{"same name", NewSeries("Psych", TypeSeasoned), NewSeries("Psych", TypeSeasoned), true},
		{"case insensitive", NewSeries("psych", TypeSeasoned), NewSeries("PSYCH", TypeSeasoned), true},
		{"different name", NewSeries("Psych", TypeSeasoned), NewSeries("Monk", TypeSeasoned), false},
		{"nil vs series", nil, psych, false},
		{"both nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestSeriesCompare(t *testing.T) {
	assert.Negative(t, NewSeries("Monk", TypeSeasoned).Compare(NewSeries("Psych", TypeSeasoned)))
	assert.Positive(t, NewSeries("Psych", TypeSeasoned).Compare(NewSeries("Monk", TypeSeasoned)))
	assert.Zero(t, NewSeries("psych", TypeSeasoned).Compare(NewSeries("PSYCH", TypeSeasoned)))

	// nil sorts first
	var none *Series
	assert.Negative(t, none.Compare(NewSeries("Psych", TypeSeasoned)))
	assert.Positive(t, NewSeries("Psych", TypeSeasoned).Compare(none))
	assert.Zero(t, none.Compare(nil))
}

func TestSeriesCollections(t *testing.T) {
	s := NewSeries("Psych", TypeSeasoned)
	s1 := s.NewSeason(1)
	s2 := s.NewSeason(2)
	e, err := s.NewSeasonedEpisode(s1, 1)
	require.NoError(t, err)

	assert.Equal(t, []*Season{s1, s2}, s.Seasons())
	assert.Equal(t, []*Episode{e}, s.Episodes())
	assert.Same(t, s1, e.Season())
}

func TestSetSeasonDifferentSeries(t *testing.T) {
	psych := NewSeries("Psych", TypeSeasoned)
	monk := NewSeries("Monk", TypeSeasoned)
	season := monk.NewSeason(1)

	e := psych.NewEpisode()
	err := e.SetSeason(season)
	require.ErrorIs(t, err, ErrDifferentSeries)
	assert.Nil(t, e.Season())

	// NewSeasonedEpisode fails the same way
	_, err = psych.NewSeasonedEpisode(season, 3)
	require.ErrorIs(t, err, ErrDifferentSeries)
}

func TestSeasonEqual(t *testing.T) {
	psych := NewSeries("Psych", TypeSeasoned)
	monk := NewSeries("Monk", TypeSeasoned)

	tests := []struct {
		name string
		a, b *Season
		want bool
	}{
		{"same number same series", psych.NewSeason(1), psych.NewSeason(1), true},
		{"different number", psych.NewSeason(1), psych.NewSeason(2), false},
		{"same number different series", psych.NewSeason(3), monk.NewSeason(3), false},
		{"titled equal", psych.NewTitledSeason("Specials"), psych.NewTitledSeason("specials"), true},
		{"titled vs numbered", psych.NewTitledSeason("Specials"), psych.NewSeason(1), false},
		{"nil vs season", nil, psych.NewSeason(1), false},
		{"both nil", nil, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestSeasonKind(t *testing.T) {
	psych := NewSeries("Psych", TypeSeasoned)

	numbered := psych.NewSeason(2)
	assert.True(t, numbered.IsNumbered())
	assert.False(t, numbered.IsTitled())

	titled := psych.NewTitledSeason("Specials")
	assert.False(t, titled.IsNumbered())
	assert.True(t, titled.IsTitled())
}

func TestEpisodeCompareOrdering(t *testing.T) {
	psych := NewSeries("Psych", TypeSeasoned)
	s1 := psych.NewSeason(1)
	s2 := psych.NewSeason(2)

	seasoned := func(season *Season, num int) *Episode {
		e, err := psych.NewSeasonedEpisode(season, num)
		require.NoError(t, err)
		return e
	}

	tests := []struct {
		name string
		a, b *Episode
		want int
	}{
		{"same season lower number", seasoned(s1, 1), seasoned(s1, 2), -1},
		{"earlier season wins", seasoned(s1, 9), seasoned(s2, 1), -1},
		{"equal", seasoned(s2, 4), seasoned(s2, 4), 0},
		{"no season sorts first", psych.NewMiniSeriesEpisode(5), seasoned(s1, 1), -1},
		{"series number ordering", psych.NewMiniSeriesEpisode(2), psych.NewMiniSeriesEpisode(7), -1},
		{"dated ordering", psych.NewDatedEpisode(PartialDate{2010, 3, 14}), psych.NewDatedEpisode(PartialDate{2010, 3, 15}), -1},
		{"title tiebreaker", &Episode{Series: psych, Title: "Alpha"}, &Episode{Series: psych, Title: "beta"}, -1},
		{"nil first", nil, seasoned(s1, 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Compare(tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
				assert.Positive(t, tt.b.Compare(tt.a))
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
				assert.True(t, tt.a.Equal(tt.b))
			}
		})
	}
}

func TestEpisodeCompareCrossSeries(t *testing.T) {
	monk := NewSeries("Monk", TypeSeasoned)
	psych := NewSeries("Psych", TypeSeasoned)

	a, err := monk.NewSeasonedEpisode(monk.NewSeason(8), 12)
	require.NoError(t, err)
	b, err := psych.NewSeasonedEpisode(psych.NewSeason(1), 1)
	require.NoError(t, err)

	// series name decides before any numbering
	assert.Negative(t, a.Compare(b))
}

func TestEpisodePredicates(t *testing.T) {
	psych := NewSeries("Psych", TypeSeasoned)

	e, err := psych.NewSeasonedEpisode(psych.NewSeason(3), 7)
	require.NoError(t, err)
	e.Title = "Lead Balloon"
	assert.True(t, e.IsNumberedInSeason())
	assert.False(t, e.IsNumberedInSeries())
	assert.True(t, e.IsTitled())
	assert.False(t, e.IsDated())

	d := psych.NewDatedEpisode(PartialDate{Year: 2009, Month: 1, Day: 23})
	assert.True(t, d.IsDated())
	assert.False(t, d.IsNumberedInSeason())
}

func TestPartialDate(t *testing.T) {
	assert.True(t, PartialDate{}.IsZero())
	assert.False(t, PartialDate{Year: 2009}.IsZero())

	bare := PartialDate{Year: 2009}
	assert.False(t, bare.HasMonth())
	assert.False(t, bare.HasDay())

	full := PartialDate{Year: 2009, Month: 1, Day: 23}
	assert.True(t, full.HasMonth())
	assert.True(t, full.HasDay())

	// year, then month, then day
	assert.Negative(t, PartialDate{Year: 2008, Month: 12, Day: 31}.Compare(PartialDate{Year: 2009, Month: 1, Day: 1}))
	assert.Negative(t, PartialDate{Year: 2009}.Compare(PartialDate{Year: 2009, Month: 1}))
	assert.Zero(t, full.Compare(full))
}

func TestMovieEqual(t *testing.T) {
	a := &Movie{Name: "Heat", Year: 1995}
	b := &Movie{Name: "Heat", Year: 1995}
	c := &Movie{Name: "heat", Year: 1995}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c)) // movie names are case-sensitive

	// identity is the name alone; the year is descriptive
	assert.True(t, a.Equal(&Movie{Name: "Heat", Year: 2024}))
	assert.False(t, a.Equal(nil))
}
