package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/scener/pkg/release"
)

func TestGroupCorrector(t *testing.T) {
	c := &GroupCorrector{From: "DIM", To: "DIMENSION"}

	t.Run("corrects matching group", func(t *testing.T) {
		r := &release.Release{Group: "dim"}
		changes := c.Apply(r)
		assert.Equal(t, release.Group("DIMENSION"), r.Group)
		assert.Len(t, changes, 1)
	})

	t.Run("other group untouched", func(t *testing.T) {
		r := &release.Release{Group: "LOL"}
		assert.Nil(t, c.Apply(r))
		assert.Equal(t, release.Group("LOL"), r.Group)
	})

	t.Run("already canonical", func(t *testing.T) {
		r := &release.Release{Group: "DIMENSION"}
		assert.Nil(t, c.Apply(r))
	})
}

func TestTagCorrector(t *testing.T) {
	c := &TagCorrector{From: "WEBDL", To: "WEB-DL"}

	t.Run("rewrites every occurrence", func(t *testing.T) {
		r := &release.Release{Tags: release.Tags{"1080p", "webdl", "WEBDL"}}
		changes := c.Apply(r)
		assert.Equal(t, release.Tags{"1080p", "WEB-DL", "WEB-DL"}, r.Tags)
		assert.Len(t, changes, 2)
	})

	t.Run("no occurrence", func(t *testing.T) {
		r := &release.Release{Tags: release.Tags{"720p", "HDTV"}}
		assert.Nil(t, c.Apply(r))
	})
}

func TestSameGroupRule(t *testing.T) {
	rule := SameGroupRule{}
	accepted := []*release.Release{{Group: "DIMENSION"}}

	assert.Equal(t, "same-group", rule.Name())
	assert.True(t, rule.Compatible(&release.Release{Group: "dimension"}, accepted))
	assert.False(t, rule.Compatible(&release.Release{Group: "LOL"}, accepted))
	assert.False(t, rule.Compatible(&release.Release{}, accepted))
	assert.False(t, rule.Compatible(&release.Release{Group: ""}, []*release.Release{{Group: ""}}))
}

func TestCrossGroupRule(t *testing.T) {
	accepted := []*release.Release{{Group: "DIMENSION"}}

	t.Run("one way", func(t *testing.T) {
		rule := CrossGroupRule{Source: "DIMENSION", Substitute: "LOL"}
		assert.True(t, rule.Compatible(&release.Release{Group: "LOL"}, accepted))
		assert.False(t, rule.Compatible(&release.Release{Group: "DIMENSION"}, []*release.Release{{Group: "LOL"}}))
	})

	t.Run("symmetric", func(t *testing.T) {
		rule := CrossGroupRule{Source: "DIMENSION", Substitute: "LOL", Symmetric: true}
		assert.True(t, rule.Compatible(&release.Release{Group: "DIMENSION"}, []*release.Release{{Group: "LOL"}}))
	})

	t.Run("name", func(t *testing.T) {
		rule := CrossGroupRule{Source: "DIMENSION", Substitute: "LOL"}
		assert.Equal(t, "cross-group DIMENSION->LOL", rule.Name())
	})
}
