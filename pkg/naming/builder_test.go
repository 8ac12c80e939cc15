package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderSeparators(t *testing.T) {
	prof := DefaultProfile()

	tests := []struct {
		name  string
		build func(b *Builder)
		want  string
	}{
		{
			"default separator",
			func(b *Builder) {
				b.Append(PropSeries, "Psych").Append(PropTitle, "Pilot")
			},
			"Psych Pilot",
		},
		{
			"season episode joined",
			func(b *Builder) {
				b.Append(PropSeries, "Psych").Append(PropSeason, "S03").Append(PropEpisode, "E07")
			},
			"Psych S03E07",
		},
		{
			"tags dotted",
			func(b *Builder) {
				b.Append(PropMedia, "Psych.S03E07").Append(PropTag, "720p").Append(PropTag, "HDTV")
			},
			"Psych.S03E07.720p.HDTV",
		},
		{
			"group dashed",
			func(b *Builder) {
				b.Append(PropTag, "x264").Append(PropGroup, "DIMENSION")
			},
			"x264-DIMENSION",
		},
		{
			"episode range context",
			func(b *Builder) {
				b.Append(PropEpisode, "E01").AppendCtx(PropEpisode, CtxRange, "E03")
			},
			"E01-E03",
		},
		{
			"episode addition context",
			func(b *Builder) {
				b.Append(PropEpisode, "E01").AppendCtx(PropEpisode, CtxAddition, "E02")
			},
			"E01-E02",
		},
		{
			"empty append is a no-op",
			func(b *Builder) {
				b.Append(PropSeries, "Psych").Append(PropTitle, "").Append(PropGroup, "LOL")
			},
			"Psych-LOL",
		},
		{
			"single fragment",
			func(b *Builder) {
				b.Append(PropSeries, "Psych")
			},
			"Psych",
		},
		{
			"nothing appended",
			func(b *Builder) {},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(prof)
			tt.build(b)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestResolveSeparatorPrecedence(t *testing.T) {
	rules := []SeparatorRule{
		{Context: "ctx", First: PropSeason, Second: PropEpisode, Separator: "1"},
		{Context: "ctx", Second: PropEpisode, Separator: "2"},
		{Context: "ctx", First: PropSeason, Separator: "3"},
		{First: PropSeason, Second: PropEpisode, Separator: "4"},
		{Second: PropEpisode, Separator: "5"},
		{First: PropSeason, Separator: "6"},
	}

	tests := []struct {
		name          string
		first, second Property
		ctx           string
		want          string
	}{
		{"exact pair with context", PropSeason, PropEpisode, "ctx", "1"},
		{"second only with context", PropTitle, PropEpisode, "ctx", "2"},
		{"first only with context", PropSeason, PropTitle, "ctx", "3"},
		{"exact pair no context", PropSeason, PropEpisode, "", "4"},
		{"context falls back to contextless", PropTitle, PropEpisode, "other", "5"},
		{"first only no context", PropSeason, PropTitle, "", "6"},
		{"no rule matches", PropTitle, PropTag, "", "_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveSeparator(rules, tt.first, tt.second, tt.ctx, "_")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSeparatorDeclarationOrder(t *testing.T) {
	// within one precedence step the first declared rule wins
	rules := []SeparatorRule{
		{Second: PropTag, Separator: "first"},
		{Second: PropTag, Separator: "second"},
	}
	assert.Equal(t, "first", resolveSeparator(rules, PropMedia, PropTag, "", " "))
}

func TestBuilderConverters(t *testing.T) {
	prof := DefaultProfile()
	b := NewBuilder(prof)
	b.Convert(PropEpisode, func(v any) string {
		return prof.FormatEpisode(v.(int))
	})
	b.AppendValue(PropEpisode, 7)
	b.AppendValue(PropTitle, nil) // nil value is a no-op
	assert.Equal(t, "E07", b.String())
}

func TestBuilderAppendAll(t *testing.T) {
	b := NewBuilder(DefaultProfile())
	b.AppendAll(PropTag, "720p", "HDTV", "x264")
	assert.Equal(t, "720p.HDTV.x264", b.String())
}

func TestBuilderFinalTransform(t *testing.T) {
	prof := DefaultProfile()
	prof.FinalTransform = strings.ToUpper
	b := NewBuilder(prof)
	b.Append(PropSeries, "Psych").Append(PropSeason, "S03")
	assert.Equal(t, "PSYCH S03", b.String())
}
