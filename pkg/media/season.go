package media

import "strings"

// Season is one season of a series. A season always belongs to exactly
// one series; create seasons through Series.NewSeason or
// Series.NewTitledSeason so the back-reference is wired at construction.
// Number zero means the season is unnumbered.
type Season struct {
	Series     *Series
	Number     int
	Title      string
	FinaleDate PartialDate
}

func (*Season) item() {}

// IsNumbered reports whether the season carries a number.
func (s *Season) IsNumbered() bool { return s != nil && s.Number != 0 }

// IsTitled reports whether the season carries a title.
func (s *Season) IsTitled() bool { return s != nil && s.Title != "" }

// Equal reports whether two seasons belong to equal series and share the
// same number and case-insensitive title.
func (s *Season) Equal(o *Season) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Series.Equal(o.Series) && s.Number == o.Number && strings.EqualFold(s.Title, o.Title)
}

// Compare orders seasons by series, then number (unnumbered first), then
// case-insensitive title. Nil sorts first.
func (s *Season) Compare(o *Season) int {
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
	if c := s.Series.Compare(o.Series); c != 0 {
		return c
	}
	if c := cmpInt(s.Number, o.Number); c != 0 {
		return c
	}
	return strings.Compare(strings.ToLower(s.Title), strings.ToLower(o.Title))
}
