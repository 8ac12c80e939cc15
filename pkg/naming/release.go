package naming

import (
	"fmt"
	"strings"

	"github.com/vmunix/scener/pkg/media"
	"github.com/vmunix/scener/pkg/release"
)

// ReleaseNamer renders a scene release: the packaged media, then the
// tags, then the group or, when no group is known, the source label.
// Word separators inside the media fragment are converted to the scene
// dot convention, e.g. "Psych.S03E07.720p.HDTV.x264-DIMENSION".
type ReleaseNamer struct {
	Profile *Profile
}

func (n *ReleaseNamer) Name(svc *Service, v any, p Params) (string, error) {
	r, ok := v.(*release.Release)
	if !ok {
		return "", fmt.Errorf("release namer: unsupported type %T", v)
	}

	mediaName, err := nameReleaseMedia(svc, r, p)
	if err != nil {
		return "", err
	}

	b := NewBuilder(n.Profile)
	b.Append(PropMedia, strings.ReplaceAll(mediaName, " ", "."))
	for _, t := range r.Tags {
		b.Append(PropTag, string(t))
	}
	if r.Group != "" {
		b.Append(PropGroup, string(r.Group))
	} else if r.Source != "" {
		b.Append(PropSource, r.Source)
	}
	return b.String(), nil
}

// nameReleaseMedia renders a release's materials list. Several episodes
// are grouped into a transient MultiEpisode for range compression;
// anything else is named item by item.
func nameReleaseMedia(svc *Service, r *release.Release, p Params) (string, error) {
	eps := episodesOf(r.Media)
	if len(eps) > 1 && len(eps) == len(r.Media) {
		return svc.Name(media.NewMultiEpisode(eps...), p)
	}

	var parts []string
	for _, item := range r.Media {
		name, err := svc.Name(item, p)
		if err != nil {
			return "", err
		}
		if name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " "), nil
}

func episodesOf(items []media.Item) []*media.Episode {
	var eps []*media.Episode
	for _, item := range items {
		if e, ok := item.(*media.Episode); ok {
			eps = append(eps, e)
		}
	}
	return eps
}

// SubtitleReleaseNamer renders a subtitle package for a media release:
// the matched release name, the subtitle language, hearing-impaired and
// foreign-parts markers, then the subtitle group.
type SubtitleReleaseNamer struct {
	Profile *Profile
}

func (n *SubtitleReleaseNamer) Name(svc *Service, v any, p Params) (string, error) {
	sr, ok := v.(*release.SubtitleRelease)
	if !ok {
		return "", fmt.Errorf("subtitle release namer: unsupported type %T", v)
	}

	matched := sr.Matches
	if override, ok := p.Value(ParamRelease); ok {
		if r, ok := override.(*release.Release); ok {
			matched = r
		}
	}

	relName := ""
	if matched != nil {
		var err error
		relName, err = svc.Name(matched, p)
		if err != nil {
			return "", err
		}
	}

	b := NewBuilder(n.Profile)
	b.Append(PropMedia, relName)
	b.Append(PropLanguage, sr.Subtitle.Language)
	if sr.Subtitle.HearingImpaired {
		b.Append(PropMarker, "HI")
	}
	if sr.Subtitle.ForeignParts {
		b.Append(PropMarker, "FOREIGN")
	}
	for _, t := range sr.Tags {
		b.Append(PropTag, string(t))
	}
	if sr.Group != "" {
		b.Append(PropGroup, string(sr.Group))
	}
	return b.String(), nil
}
