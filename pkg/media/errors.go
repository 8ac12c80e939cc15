package media

import "errors"

// ErrDifferentSeries is returned when an episode is assigned a season
// that belongs to another series. This is a programming-contract
// violation and fails immediately rather than accepting inconsistent data.
var ErrDifferentSeries = errors.New("season belongs to a different series")
