package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestView_StartsUnfiltered(t *testing.T) {
	v := NewView(posts)
	assert.Len(t, v.Items(), len(posts))
	assert.False(t, v.Empty())
	assert.False(t, v.State().Active())
}

func TestView_MutatorsRecompute(t *testing.T) {
	v := NewView(posts)

	v.SetCategory("Web Development")
	assert.Equal(t, []string{"1", "4", "5"}, keys(v.Items()))

	v.ToggleTag("React")
	assert.Equal(t, []string{"4"}, keys(v.Items()))

	v.ToggleTag("React").SetSearchQuery("web")
	assert.Equal(t, []string{"1", "5"}, keys(v.Items()))
}

func TestView_EmptyResultIsAValidState(t *testing.T) {
	v := NewView(posts).SetCategory("Cooking")
	assert.True(t, v.Empty())
	assert.NotNil(t, v.Items())
	assert.Len(t, v.Source(), 7)
}

func TestView_ClearAllIsOneStep(t *testing.T) {
	v := NewView(photos).
		SetCategory("Nature").
		SetCollection("Landscapes").
		ToggleTag("sunset").
		SetSearchQuery("ocean")
	assert.Equal(t, []string{"10"}, keys(v.Items()))

	v.ClearAll()
	assert.False(t, v.State().Active())
	assert.Equal(t, keys(photos), keys(v.Items()))
}

func TestView_ReplaceInstallsWholeState(t *testing.T) {
	v := NewView(posts)
	v.Replace(NewState().WithCategory("Programming"))
	assert.Equal(t, []string{"6"}, keys(v.Items()))
}

func TestView_OptionsComeFromSource(t *testing.T) {
	v := NewView(photos).SetCategory("Tech")
	assert.Equal(t, []string{All, "Nature", "Tech"}, v.Categories())
	assert.Equal(t, []string{All, "Landscapes", "Workspaces"}, v.Collections())
	assert.Contains(t, v.Tags(), "ocean")
}

func TestNeighbor_WrapsAround(t *testing.T) {
	items := Apply(photos, NewState().WithCategory("Nature"))
	a := assert.New(t)

	next, ok := Neighbor(items, "1", Next)
	a.True(ok)
	a.Equal("10", next.Key())

	next, ok = Neighbor(items, "10", Next)
	a.True(ok)
	a.Equal("1", next.Key())

	prev, ok := Neighbor(items, "1", Prev)
	a.True(ok)
	a.Equal("10", prev.Key())
}

func TestNeighbor_NotInView(t *testing.T) {
	items := Apply(photos, NewState().WithCategory("Nature"))
	_, ok := Neighbor(items, "2", Next)
	assert.False(t, ok)

	_, ok = Neighbor([]photo{}, "1", Next)
	assert.False(t, ok)
}

func TestNeighbor_SingleItemIsItsOwnNeighbor(t *testing.T) {
	items := Apply(photos, NewState().WithCollection("Workspaces"))
	got, ok := Neighbor(items, "2", Prev)
	assert.True(t, ok)
	assert.Equal(t, "2", got.Key())
}
