// Package naming renders media and release values into canonical scene
// names. A Service dispatches each value to the namer registered for its
// most specific kind; variant namers encode the formatting rules of the
// scene naming convention.
package naming

import (
	"fmt"

	"github.com/vmunix/scener/pkg/media"
	"github.com/vmunix/scener/pkg/release"
)

// Kind identifies one namable variant. The set of kinds is closed over
// the known media and release types; genuinely unknown values take the
// service's default-rendering arm.
type Kind int

const (
	KindUnknown Kind = iota
	KindSeries
	KindSeason
	KindEpisode
	KindSeasonedEpisode
	KindMiniSeriesEpisode
	KindDatedEpisode
	KindMultiEpisode
	KindMovie
	KindRelease
	KindSubtitleRelease
)

func (k Kind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindSeason:
		return "season"
	case KindEpisode:
		return "episode"
	case KindSeasonedEpisode:
		return "seasoned-episode"
	case KindMiniSeriesEpisode:
		return "miniseries-episode"
	case KindDatedEpisode:
		return "dated-episode"
	case KindMultiEpisode:
		return "multi-episode"
	case KindMovie:
		return "movie"
	case KindRelease:
		return "release"
	case KindSubtitleRelease:
		return "subtitle-release"
	default:
		return "unknown"
	}
}

// general returns the broader kind a namer lookup falls back to when no
// namer is registered for the exact kind. KindUnknown means no fallback.
func (k Kind) general() Kind {
	switch k {
	case KindSeasonedEpisode, KindMiniSeriesEpisode, KindDatedEpisode:
		return KindEpisode
	case KindSubtitleRelease:
		return KindRelease
	default:
		return KindUnknown
	}
}

// KindOf resolves a value's most specific kind. Episodes are refined by
// their series type; an episode without a series stays KindEpisode.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case *media.Series:
		return KindSeries
	case *media.Season:
		return KindSeason
	case *media.Episode:
		if x == nil {
			return KindUnknown
		}
		if x.Series == nil {
			return KindEpisode
		}
		switch x.Series.Type {
		case media.TypeMiniSeries:
			return KindMiniSeriesEpisode
		case media.TypeDated:
			return KindDatedEpisode
		default:
			return KindSeasonedEpisode
		}
	case *media.MultiEpisode:
		return KindMultiEpisode
	case *media.Movie:
		return KindMovie
	case *release.SubtitleRelease:
		return KindSubtitleRelease
	case *release.Release:
		return KindRelease
	default:
		return KindUnknown
	}
}

// Namer renders one variant into its canonical string. Namers receive
// the service so nested values (a release naming its media) render
// through the same registry.
type Namer interface {
	Name(svc *Service, v any, p Params) (string, error)
}

// NamerFunc adapts a function to the Namer interface.
type NamerFunc func(svc *Service, v any, p Params) (string, error)

func (f NamerFunc) Name(svc *Service, v any, p Params) (string, error) {
	return f(svc, v, p)
}

// Service is the namer registry. Lookup resolves the value's exact kind
// first, then the kind's general fallback, then fmt.Stringer; a lenient
// service finally falls back to fmt's default formatting, a strict one
// returns ErrNoNamer.
type Service struct {
	namers map[Kind]Namer
	strict bool
}

// NewService creates a lenient service with no namers registered.
func NewService() *Service {
	return &Service{namers: make(map[Kind]Namer)}
}

// NewStrictService creates a service that returns ErrNoNamer instead of
// falling back to default formatting.
func NewStrictService() *Service {
	return &Service{namers: make(map[Kind]Namer), strict: true}
}

// Register installs the namer for a kind, replacing any previous one.
func (s *Service) Register(k Kind, n Namer) {
	s.namers[k] = n
}

// resolve finds the namer for a kind, walking the general-kind fallback.
func (s *Service) resolve(k Kind) (Namer, bool) {
	for k != KindUnknown {
		if n, ok := s.namers[k]; ok {
			return n, true
		}
		k = k.general()
	}
	return nil, false
}

// CanName reports whether a registered namer or fallback can render v.
func (s *Service) CanName(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := s.resolve(KindOf(v)); ok {
		return true
	}
	if _, ok := v.(fmt.Stringer); ok {
		return true
	}
	return !s.strict
}

// Name renders a value. A nil value yields the empty string without
// invoking any namer. Any error raised inside a namer is wrapped into a
// *NamingError carrying the candidate.
func (s *Service) Name(v any, p Params) (string, error) {
	if v == nil {
		return "", nil
	}
	if n, ok := s.resolve(KindOf(v)); ok {
		name, err := n.Name(s, v, p)
		if err != nil {
			return "", &NamingError{Candidate: v, Err: err}
		}
		return name, nil
	}
	if str, ok := v.(fmt.Stringer); ok {
		return str.String(), nil
	}
	if s.strict {
		return "", &NamingError{Candidate: v, Err: ErrNoNamer}
	}
	return fmt.Sprintf("%v", v), nil
}
