package naming

// Parameter keys understood by the built-in namers. Unknown keys are
// ignored; missing keys fall back to per-namer defaults.
const (
	ParamIncludeSeries             = "includeSeries"
	ParamIncludeSeason             = "includeSeason"
	ParamAlwaysIncludeSeasonTitle  = "alwaysIncludeSeasonTitle"
	ParamAlwaysIncludeEpisodeTitle = "alwaysIncludeEpisodeTitle"
	ParamRelease                   = "release"
)

// Params is a flat string-keyed parameter map passed opaquely through
// every namer invocation.
type Params map[string]any

// Bool returns the boolean value for key, or def when the key is absent
// or not a bool.
func (p Params) Bool(key string, def bool) bool {
	if v, ok := p[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// Value returns the raw value for key.
func (p Params) Value(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// With returns a copy of the params with one key replaced.
func (p Params) With(key string, v any) Params {
	out := make(Params, len(p)+1)
	for k, val := range p {
		out[k] = val
	}
	out[key] = v
	return out
}
