package dex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notjagan/dexview/pkg/model"
)

func TestViewStateReducersDoNotMutate(t *testing.T) {
	initial := ViewState{}

	searched := initial.WithSearch("char")
	sorted := searched.ToggleSort()

	assert.Equal(t, ViewState{}, initial)
	assert.Equal(t, "char", searched.Search)
	assert.Equal(t, model.SortByNumber, searched.Sort)
	assert.Equal(t, model.SortByName, sorted.Sort)
	assert.Equal(t, model.SortByNumber, sorted.ToggleSort().Sort)
}

func TestViewStateSelection(t *testing.T) {
	card := &Card{Number: 4, Name: "charmander"}

	s := ViewState{}.WithSelection(4).WithCard(card)
	assert.Equal(t, 4, s.Selected)
	assert.Same(t, card, s.Card)

	// reselecting the same entry keeps its card
	assert.Same(t, card, s.WithSelection(4).Card)

	next := s.WithSelection(5)
	assert.Nil(t, next.Card)
	assert.Same(t, card, s.Card)

	// cards for another entry are ignored
	assert.Nil(t, next.WithCard(card).Card)
	assert.Nil(t, next.WithCard(nil).Card)
}

func TestViewStateListing(t *testing.T) {
	roster := model.Roster{{Name: "mew"}, {Name: "mewtwo"}, {Name: "abra"}}

	got := ViewState{}.WithSearch("mew").WithSort(model.SortByName).Listing(roster)

	assert.Equal(t, []model.Listing{
		{Number: 1, Entry: roster[0]},
		{Number: 2, Entry: roster[1]},
	}, got)
}
