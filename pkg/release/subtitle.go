package release

// Subtitle describes a subtitle file for a media item.
type Subtitle struct {
	Language        string
	HearingImpaired bool
	ForeignParts    bool
}

// SubtitleRelease is a subtitle package for a matching media release:
// the subtitle details plus the release they fit.
type SubtitleRelease struct {
	Subtitle Subtitle
	Matches  *Release
	Tags     Tags
	Group    Group
}
