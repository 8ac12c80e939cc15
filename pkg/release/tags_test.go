package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Tags
	}{
		{"dotted", "720p.HDTV.x264", Tags{"720p", "HDTV", "x264"}},
		{"spaced", "720p HDTV x264", Tags{"720p", "HDTV", "x264"}},
		{"mixed", "1080p.WEB-DL DD5.1", Tags{"1080p", "WEB-DL", "DD5", "1"}},
		{"empty", "", Tags{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.in))
		})
	}
}

func TestTagsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Tags
		want bool
	}{
		{"equal", Tags{"720p", "HDTV"}, Tags{"720p", "HDTV"}, true},
		{"case insensitive", Tags{"720p", "hdtv"}, Tags{"720P", "HDTV"}, true},
		{"order matters", Tags{"HDTV", "720p"}, Tags{"720p", "HDTV"}, false},
		{"different length", Tags{"720p"}, Tags{"720p", "HDTV"}, false},
		{"both empty", Tags{}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestTagsContains(t *testing.T) {
	ts := Tags{"720p", "HDTV", "x264"}
	assert.True(t, ts.Contains("hdtv"))
	assert.False(t, ts.Contains("1080p"))
}

func TestTagsMetaHandling(t *testing.T) {
	meta := Tags{"PROPER", "REPACK", "RERIP", "REAL", "iNTERNAL"}

	t.Run("meta on one side tolerated", func(t *testing.T) {
		a := ParseTags("PROPER.720p.HDTV.x264")
		b := ParseTags("720p.HDTV.x264")
		assert.True(t, a.EqualIgnoringMeta(b, meta))
		assert.True(t, b.EqualIgnoringMeta(a, meta))
	})

	t.Run("different meta on both sides tolerated", func(t *testing.T) {
		a := ParseTags("PROPER.720p.HDTV")
		b := ParseTags("REPACK.720p.HDTV")
		assert.True(t, a.EqualIgnoringMeta(b, meta))
	})

	t.Run("non-meta difference rejected", func(t *testing.T) {
		a := ParseTags("PROPER.720p.HDTV")
		b := ParseTags("1080p.HDTV")
		assert.False(t, a.EqualIgnoringMeta(b, meta))
	})

	t.Run("without meta", func(t *testing.T) {
		assert.Equal(t, Tags{"720p", "HDTV"}, ParseTags("PROPER.720p.HDTV").WithoutMeta(meta))
	})

	t.Run("meta only", func(t *testing.T) {
		assert.Equal(t, Tags{"PROPER"}, ParseTags("PROPER.720p.HDTV").MetaOnly(meta))
		assert.Empty(t, ParseTags("720p.HDTV").MetaOnly(meta))
	})
}

func TestTagsString(t *testing.T) {
	assert.Equal(t, "720p.HDTV.x264", Tags{"720p", "HDTV", "x264"}.String())
	assert.Empty(t, Tags{}.String())
}

func TestGroupEqual(t *testing.T) {
	assert.True(t, Group("DIMENSION").Equal("dimension"))
	assert.False(t, Group("DIMENSION").Equal("LOL"))
	assert.True(t, Group("").Equal(""))
}

func TestAssumeString(t *testing.T) {
	assert.Equal(t, "if-none-found", AssumeIfNoneFound.String())
	assert.Equal(t, "always", AssumeAlways.String())
}

func TestReleaseFirstMedia(t *testing.T) {
	assert.Nil(t, New().FirstMedia())
}
