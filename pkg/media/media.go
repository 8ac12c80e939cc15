// Package media provides the domain model for series, seasons, episodes
// and movies as used by scene release naming and matching.
package media

// Item is implemented by every namable media value.
type Item interface {
	item()
}

// SeriesType describes how a series numbers its episodes.
type SeriesType int

const (
	// TypeSeasoned series are organized into numbered seasons (S01E01).
	TypeSeasoned SeriesType = iota
	// TypeMiniSeries series number episodes across the whole run.
	TypeMiniSeries
	// TypeDated series identify episodes by air date (daily shows).
	TypeDated
)

func (t SeriesType) String() string {
	switch t {
	case TypeMiniSeries:
		return "miniseries"
	case TypeDated:
		return "dated"
	default:
		return "seasoned"
	}
}
