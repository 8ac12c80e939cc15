package reconcile

import (
	"github.com/vmunix/scener/pkg/media"
	"github.com/vmunix/scener/pkg/release"
)

// enrich merges structured fields parsed from a candidate's raw name
// into the candidate. Parsed values overwrite retrieved ones: the scene
// release name is more authoritative than a metadata database's
// loosely-formatted listing. The candidate is copied; retrieved inputs
// are never mutated.
func (p *Pipeline) enrich(c *release.Release) *release.Release {
	out := *c
	out.Tags = append(release.Tags(nil), c.Tags...)
	out.Media = append([]media.Item(nil), c.Media...)

	if c.Name == "" {
		return &out
	}
	info, err := release.Parse(c.Name)
	if err != nil {
		// one unparsable candidate must not abort the rest
		p.log.Debug("enrichment parse failed", "name", c.Name, "error", err)
		return &out
	}

	if len(info.Tags) > 0 {
		out.Tags = info.Tags
	}
	if info.Group != "" {
		out.Group = info.Group
	}
	if len(out.Media) == 0 {
		out.Media = MediaFromInfo(info)
	} else if info.EpisodeTitle != "" {
		out.Media = overwriteEpisodeTitles(out.Media, info.EpisodeTitle)
	}
	return &out
}

// MediaFromInfo builds media items from a parsed release name: a series
// with seasoned, dated or mini-series episodes depending on which
// numbering fields the name carried.
func MediaFromInfo(info *release.Info) []media.Item {
	switch {
	case info.Season != 0:
		s := media.NewSeries(info.Title, media.TypeSeasoned)
		season := s.NewSeason(info.Season)
		if len(info.Episodes) == 0 {
			return []media.Item{season}
		}
		items := make([]media.Item, 0, len(info.Episodes))
		for _, num := range info.Episodes {
			e, err := s.NewSeasonedEpisode(season, num)
			if err != nil {
				continue
			}
			e.Title = info.EpisodeTitle
			items = append(items, e)
		}
		return items
	case !info.Date.IsZero():
		s := media.NewSeries(info.Title, media.TypeDated)
		e := s.NewDatedEpisode(info.Date)
		e.Title = info.EpisodeTitle
		return []media.Item{e}
	case len(info.Episodes) > 0:
		s := media.NewSeries(info.Title, media.TypeMiniSeries)
		items := make([]media.Item, 0, len(info.Episodes))
		for _, num := range info.Episodes {
			e := s.NewMiniSeriesEpisode(num)
			e.Title = info.EpisodeTitle
			items = append(items, e)
		}
		return items
	default:
		return []media.Item{media.NewMovie(info.Title)}
	}
}

// overwriteEpisodeTitles copies the episode items and sets the parsed
// title on each, leaving the retrieved episodes untouched.
func overwriteEpisodeTitles(items []media.Item, title string) []media.Item {
	out := make([]media.Item, len(items))
	for i, item := range items {
		if e, ok := item.(*media.Episode); ok {
			clone := *e
			clone.Title = title
			out[i] = &clone
		} else {
			out[i] = item
		}
	}
	return out
}
