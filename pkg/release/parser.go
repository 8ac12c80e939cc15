package release

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/vmunix/scener/pkg/media"
)

// Info is the structured form of a parsed release name.
type Info struct {
	Title        string            // series or movie title as written
	Season       int               // 0 when absent
	Episodes     []int             // episode numbers, in order; empty when absent
	Date         media.PartialDate // dated episodes
	EpisodeTitle string            // words between the numbering and the first tag
	Tags         Tags
	Group        Group
}

var (
	seasonEpisodeRegex = regexp.MustCompile(`(?i)\bS(\d{1,2})[\s.]?((?:E\d{1,3}(?:[-.]?E?\d{1,3})*)?)`)
	episodeNumRegex    = regexp.MustCompile(`(?i)E?(\d{1,3})`)
	dateRegex          = regexp.MustCompile(`\b((?:19|20)\d{2})[ .-](\d{2})[ .-](\d{2})\b`)
	miniEpisodeRegex   = regexp.MustCompile(`(?i)\b(?:E|EP|Part[ .])(\d{1,3})\b`)
	extensionRegex     = regexp.MustCompile(`(?i)\.(mkv|mp4|avi|srt|sub|idx|ass|nfo)$`)

	// episodeyToken guards group extraction against eating the tail of an
	// episode range like "S01E01-E03"
	episodeyToken = regexp.MustCompile(`(?i)^E?\d{1,3}$`)
)

// tagTokenRegexes recognize release tag tokens. The leading entries are
// the more specific multi-word forms.
var tagTokenRegexes = func() []*regexp.Regexp {
	patterns := []string{
		`^\d{3,4}[pi]$`,
		`^(4K|UHD)$`,
		`^(HDR10\+?|HDR|DoVi|DV|HLG)$`,
		`^(DTS(-HD)?(-X)?|TrueHD|Atmos|AAC(2\.0)?|AC3|E?AC-?3|DD[P+]?(5\.1)?|FLAC|Opus|MP3)$`,
		`^\d\.\d$`,
		`^(BluRay|Blu-Ray|BDRip|BRRip|REMUX|WEB-?DL|WEB-?Rip|WEB)$`,
		`^(HDTV|PDTV|SDTV|DVDRip|DVD|DVDSCR)$`,
		`^(AMZN|NF|ATVP|HULU|DSNP|HMAX|PCOK)$`,
		`^(x|h)\.?26[45]$`,
		`^(HEVC|AVC|XviD|DivX)$`,
		`^(PROPER|REPACK|RERIP|REAL|iNTERNAL|LIMITED|EXTENDED|UNCUT|UNRATED)$`,
		`^(GERMAN|FRENCH|SPANISH|iTALiAN|MULTi|DUBBED|SUBBED|DL)$`,
		`^(8|10|12)bit$`,
	}
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		res = append(res, regexp.MustCompile(`(?i)`+p))
	}
	return res
}()

// IsTagToken reports whether a single token is a recognized release tag.
func IsTagToken(token string) bool {
	for _, re := range tagTokenRegexes {
		if re.MatchString(token) {
			return true
		}
	}
	return false
}

// Parse extracts structured information from a scene release name such
// as "Psych.S03E07.Lead.Balloon.720p.HDTV.x264-DIMENSION". Returns a
// *ParsingError when no title can be recovered.
func Parse(name string) (*Info, error) {
	raw := name
	base := extensionRegex.ReplaceAllString(filepath.Base(name), "")

	// Scene names use dots and underscores as word separators
	s := strings.ReplaceAll(base, "_", " ")
	s = strings.ReplaceAll(s, ".", " ")

	info := &Info{}

	// Group is the trailing -GROUP token
	if idx := strings.LastIndex(s, "-"); idx > 0 {
		group := strings.TrimSpace(s[idx+1:])
		if group != "" && !strings.ContainsRune(group, ' ') && !IsTagToken(group) && !episodeyToken.MatchString(group) {
			info.Group = Group(group)
			s = s[:idx]
		}
	}

	markerStart, markerEnd := -1, -1

	if m := seasonEpisodeRegex.FindStringSubmatchIndex(s); m != nil {
		info.Season, _ = strconv.Atoi(s[m[2]:m[3]])
		if m[4] >= 0 && m[5] > m[4] {
			for _, em := range episodeNumRegex.FindAllStringSubmatch(s[m[4]:m[5]], -1) {
				if n, err := strconv.Atoi(em[1]); err == nil {
					info.Episodes = append(info.Episodes, n)
				}
			}
		}
		markerStart, markerEnd = m[0], m[1]
	} else if m := dateRegex.FindStringSubmatchIndex(s); m != nil {
		year, _ := strconv.Atoi(s[m[2]:m[3]])
		month, _ := strconv.Atoi(s[m[4]:m[5]])
		day, _ := strconv.Atoi(s[m[6]:m[7]])
		info.Date = media.Date(year, month, day)
		markerStart, markerEnd = m[0], m[1]
	} else if m := miniEpisodeRegex.FindStringSubmatchIndex(s); m != nil {
		if n, err := strconv.Atoi(s[m[2]:m[3]]); err == nil {
			info.Episodes = append(info.Episodes, n)
		}
		markerStart, markerEnd = m[0], m[1]
	}

	rest := s
	if markerStart >= 0 {
		info.Title = strings.TrimSpace(s[:markerStart])
		rest = s[markerEnd:]
	}

	// Remaining tokens: everything before the first tag token belongs to
	// the episode title (or, without a numbering marker, the media title)
	var titleWords []string
	tokens := strings.Fields(rest)
	for i, tok := range tokens {
		if IsTagToken(tok) {
			for _, t := range tokens[i:] {
				if IsTagToken(t) {
					info.Tags = append(info.Tags, Tag(t))
				}
			}
			break
		}
		titleWords = append(titleWords, tok)
	}

	if markerStart >= 0 {
		info.EpisodeTitle = strings.Join(titleWords, " ")
	} else {
		info.Title = strings.Join(titleWords, " ")
	}

	if info.Title == "" {
		return nil, &ParsingError{Input: raw, Msg: "no title found"}
	}
	return info, nil
}
