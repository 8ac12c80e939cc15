package media

// PartialDate is a calendar date that may carry only a year, a year and
// month, or a full year-month-day. The zero value means "no date".
type PartialDate struct {
	Year  int
	Month int
	Day   int
}

// Date builds a full PartialDate. Month and day may be zero to leave
// those components unset.
func Date(year, month, day int) PartialDate {
	return PartialDate{Year: year, Month: month, Day: day}
}

// IsZero reports whether no date information is present.
func (d PartialDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// HasMonth reports whether the month component is set.
func (d PartialDate) HasMonth() bool { return d.Month != 0 }

// HasDay reports whether the day component is set.
func (d PartialDate) HasDay() bool { return d.Day != 0 }

// Compare orders dates chronologically. Unset dates sort first; unset
// components sort before set ones within the same year or month.
func (d PartialDate) Compare(o PartialDate) int {
	if c := cmpInt(d.Year, o.Year); c != 0 {
		return c
	}
	if c := cmpInt(d.Month, o.Month); c != 0 {
		return c
	}
	return cmpInt(d.Day, o.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
