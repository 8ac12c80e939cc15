package naming

// Property identifies the kind of fragment appended to a name. Separator
// rules are keyed by the properties of two adjacent fragments.
type Property string

const (
	PropSeries      Property = "series"
	PropSeason      Property = "season"
	PropSeasonTitle Property = "seasonTitle"
	PropEpisode     Property = "episode"
	PropTitle       Property = "title"
	PropYear        Property = "year"
	PropMonth       Property = "month"
	PropDay         Property = "day"
	PropMedia       Property = "media"
	PropTag         Property = "tag"
	PropGroup       Property = "group"
	PropSource      Property = "source"
	PropLanguage    Property = "language"
	PropMarker      Property = "marker"
)

// Separation contexts used by the built-in namers.
const (
	// CtxAddition separates consecutive runs in a multi-episode batch.
	CtxAddition = "addition"
	// CtxRange separates the first and last number of a 3+ element run.
	CtxRange = "range"
)

// SeparatorRule declares the separator between two adjacent properties.
// Empty First or Second matches any property; empty Context matches only
// appends made without a context.
type SeparatorRule struct {
	Context   string
	First     Property
	Second    Property
	Separator string
}

// resolveSeparator picks the separator between two adjacent fragments.
// Precedence, most specific first: (first,second,ctx), (any,second,ctx),
// (first,any,ctx), (any,any,ctx), then the same sequence without a
// context, then the default separator. Within one precedence step the
// first declared rule wins.
func resolveSeparator(rules []SeparatorRule, first, second Property, ctx, def string) string {
	contexts := []string{ctx}
	if ctx != "" {
		contexts = append(contexts, "")
	}
	for _, c := range contexts {
		steps := [][2]Property{
			{first, second},
			{"", second},
			{first, ""},
			{"", ""},
		}
		for _, step := range steps {
			for _, r := range rules {
				if r.Context == c && r.First == step[0] && r.Second == step[1] {
					return r.Separator
				}
			}
		}
	}
	return def
}
