// Package scoring ranks releases by the quality their tags advertise.
package scoring

import (
	"regexp"

	"github.com/vmunix/scener/pkg/release"
)

// Base scores for resolutions.
const (
	ScoreResolution2160p = 100
	ScoreResolution1080p = 80
	ScoreResolution720p  = 60
	ScoreResolutionOther = 40
)

// Bonus values for matching attributes.
const (
	BonusSource = 10
	BonusCodec  = 10
	BonusHDR    = 15
	BonusAudio  = 15
	BonusRemux  = 20
)

var (
	res2160Regex = regexp.MustCompile(`(?i)^(2160p|4K|UHD)$`)
	res1080Regex = regexp.MustCompile(`(?i)^1080[pi]$`)
	res720Regex  = regexp.MustCompile(`(?i)^720p$`)
	sourceRegex  = regexp.MustCompile(`(?i)^(BluRay|Blu-Ray|WEB-?DL|WEB-?Rip|WEB|HDTV)$`)
	codecRegex   = regexp.MustCompile(`(?i)^((x|h)\.?26[45]|HEVC|AVC)$`)
	hdrRegex     = regexp.MustCompile(`(?i)^(HDR10\+?|HDR|DoVi|DV|HLG)$`)
	audioRegex   = regexp.MustCompile(`(?i)^(DTS(-HD)?(-X)?|TrueHD|Atmos|DD[P+]?(5\.1)?|E?AC-?3|FLAC|Opus)$`)
	remuxRegex   = regexp.MustCompile(`(?i)^REMUX$`)
)

// Score rates a tag list: resolution base score plus bonuses for each
// advertised attribute class. Higher is better; the score is only
// meaningful relative to other scores.
func Score(tags release.Tags) int {
	score := ScoreResolutionOther
	var haveSource, haveCodec, haveHDR, haveAudio bool

	for _, t := range tags {
		s := string(t)
		switch {
		case res2160Regex.MatchString(s):
			score = max(score, ScoreResolution2160p)
		case res1080Regex.MatchString(s):
			score = max(score, ScoreResolution1080p)
		case res720Regex.MatchString(s):
			score = max(score, ScoreResolution720p)
		case remuxRegex.MatchString(s):
			score += BonusRemux
		case sourceRegex.MatchString(s) && !haveSource:
			score += BonusSource
			haveSource = true
		case codecRegex.MatchString(s) && !haveCodec:
			score += BonusCodec
			haveCodec = true
		case hdrRegex.MatchString(s) && !haveHDR:
			score += BonusHDR
			haveHDR = true
		case audioRegex.MatchString(s) && !haveAudio:
			score += BonusAudio
			haveAudio = true
		}
	}
	return score
}

// Best returns the index of the highest-scoring release, or -1 for an
// empty slice. Ties keep the earlier release.
func Best(rels []*release.Release) int {
	best, bestScore := -1, -1
	for i, r := range rels {
		if s := Score(r.Tags); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}
