package dex

import "github.com/notjagan/dexview/pkg/model"

// ViewState is replaced, never mutated: every reducer returns a new value.
type ViewState struct {
	Search   string
	Sort     model.SortMode
	Selected int // display number, 0 when nothing is selected
	Card     *Card
}

func (s ViewState) WithSearch(term string) ViewState {
	s.Search = term
	return s
}

func (s ViewState) WithSort(mode model.SortMode) ViewState {
	s.Sort = mode
	return s
}

func (s ViewState) ToggleSort() ViewState {
	return s.WithSort(s.Sort.Next())
}

// WithSelection drops the card of any previous selection.
func (s ViewState) WithSelection(number int) ViewState {
	if s.Selected != number {
		s.Card = nil
	}
	s.Selected = number
	return s
}

// WithCard only applies a card belonging to the current selection.
func (s ViewState) WithCard(card *Card) ViewState {
	if card == nil || card.Number != s.Selected {
		return s
	}
	s.Card = card
	return s
}

func (s ViewState) Listing(roster model.Roster) []model.Listing {
	return model.Query(roster, s.Search, s.Sort)
}
