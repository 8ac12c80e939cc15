package naming

import "fmt"

// Profile holds the formatting conventions of a naming standard:
// separator rules, placeholders, number formats and the final whole-name
// transform. Profiles are constructed once and passed by reference; the
// built-in namers never consult global state.
type Profile struct {
	Rules            []SeparatorRule
	DefaultSeparator string

	UnnamedSeries      string
	SeasonPlaceholder  string
	EpisodePlaceholder string

	SeasonFormat    string // fmt verb for season numbers, e.g. "S%02d"
	EpisodeFormat   string // fmt verb for numbers within a season
	SeriesNumFormat string // fmt verb for numbers within a series run

	// FinalTransform is applied once to the assembled name. Nil means
	// identity.
	FinalTransform func(string) string
}

// DefaultProfile returns the scene naming conventions: "S03E07" style
// numbering, space-separated fragments, dashed episode ranges.
func DefaultProfile() *Profile {
	return &Profile{
		Rules: []SeparatorRule{
			{First: PropSeason, Second: PropEpisode, Separator: ""},
			{Context: CtxAddition, First: PropEpisode, Second: PropEpisode, Separator: "-"},
			{Context: CtxRange, First: PropEpisode, Second: PropEpisode, Separator: "-"},
			{First: PropTag, Second: PropTag, Separator: "."},
			{First: PropMedia, Second: PropTag, Separator: "."},
			{Second: PropLanguage, Separator: "."},
			{First: PropLanguage, Separator: "."},
			{Second: PropMarker, Separator: "."},
			{First: PropMarker, Separator: "."},
			{Second: PropGroup, Separator: "-"},
			{Second: PropSource, Separator: "-"},
		},
		DefaultSeparator:   " ",
		UnnamedSeries:      "UNNAMED_SERIES",
		SeasonPlaceholder:  "Sxx",
		EpisodePlaceholder: "Exx",
		SeasonFormat:       "S%02d",
		EpisodeFormat:      "E%02d",
		SeriesNumFormat:    "E%02d",
	}
}

// FormatSeason renders a season number, e.g. 3 -> "S03".
func (p *Profile) FormatSeason(n int) string {
	return fmt.Sprintf(p.SeasonFormat, n)
}

// FormatEpisode renders a number-in-season, e.g. 7 -> "E07".
func (p *Profile) FormatEpisode(n int) string {
	return fmt.Sprintf(p.EpisodeFormat, n)
}

// FormatSeriesNum renders a number-in-series, e.g. 5 -> "E05".
func (p *Profile) FormatSeriesNum(n int) string {
	return fmt.Sprintf(p.SeriesNumFormat, n)
}
