package naming

import (
	"regexp"
	"strings"
)

// illegalChars are characters not allowed in filenames on common filesystems.
var illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00]`)

// multiSpace matches runs of whitespace.
var multiSpace = regexp.MustCompile(`\s+`)

// multiDot matches runs of consecutive dots.
var multiDot = regexp.MustCompile(`\.{2,}`)

// SanitizeFilename removes or replaces characters that are unsafe in
// filenames. Suitable as a Profile.FinalTransform when rendered names
// are written to disk.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\x00", "")
	name = illegalChars.ReplaceAllString(name, " ")
	name = multiDot.ReplaceAllString(name, ".")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.Trim(name, " .")
}

// NewSceneService builds a lenient service with every scene namer
// registered over the given profile. A nil profile uses DefaultProfile.
func NewSceneService(prof *Profile) *Service {
	if prof == nil {
		prof = DefaultProfile()
	}
	svc := NewService()
	svc.Register(KindSeries, &SeriesNamer{Profile: prof})
	svc.Register(KindSeason, &SeasonNamer{Profile: prof})
	svc.Register(KindSeasonedEpisode, &SeasonedEpisodeNamer{Profile: prof})
	svc.Register(KindMiniSeriesEpisode, &MiniSeriesEpisodeNamer{Profile: prof})
	svc.Register(KindDatedEpisode, &DatedEpisodeNamer{Profile: prof})
	svc.Register(KindEpisode, &SeasonedEpisodeNamer{Profile: prof})
	svc.Register(KindMultiEpisode, &MultiEpisodeNamer{Profile: prof})
	svc.Register(KindMovie, &MovieNamer{Profile: prof})
	svc.Register(KindRelease, &ReleaseNamer{Profile: prof})
	svc.Register(KindSubtitleRelease, &SubtitleReleaseNamer{Profile: prof})
	return svc
}
