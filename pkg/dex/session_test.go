package dex

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notjagan/dexview/pkg/model"
	"github.com/notjagan/dexview/pkg/pokeapi"
)

var testRoster = model.Roster{
	{Name: "bulbasaur", DetailRef: "/pokemon/1/"},
	{Name: "ivysaur", DetailRef: "/pokemon/2/"},
	{Name: "venusaur", DetailRef: "/pokemon/3/"},
}

func newTestSession(fetcher Fetcher) *Session {
	c := NewCatalog(testRoster, fetcher, model.NewResolver(model.DefaultWeaknesses()), zap.NewNop())
	return NewSession(c, ViewState{Sort: model.SortByName}, zap.NewNop())
}

func TestSessionSearchAndSort(t *testing.T) {
	s := newTestSession(&mockFetcher{})

	s.Search("saur")
	s.SetSort(model.SortByName)
	got := s.Listing()
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Number, got[1].Number, got[2].Number})

	s.Search("3")
	assert.Equal(t, []model.Listing{{Number: 3, Entry: testRoster[2]}}, s.Listing())

	state := s.ToggleSort()
	assert.Equal(t, model.SortByNumber, state.Sort)
	assert.Equal(t, "3", state.Search)
}

func TestSessionSelect(t *testing.T) {
	fetcher := &mockFetcher{}
	fetcher.On("Detail", mock.Anything, "/pokemon/1/").
		Return(&model.PokemonDetail{Name: "bulbasaur", Types: []model.TypeName{model.Grass, model.Poison}}, nil)
	s := newTestSession(fetcher)

	state, err := s.Select(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, state.Selected)
	require.NotNil(t, state.Card)
	assert.Equal(t, []model.TypeName{model.Flying, model.Poison, model.Bug, model.Fire, model.Ice, model.Ground, model.Psychic}, state.Card.Weaknesses)
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, state, s.State())
	fetcher.AssertExpectations(t)
}

func TestSessionSelectFailureKeepsState(t *testing.T) {
	fetcher := &mockFetcher{}
	fetcher.On("Detail", mock.Anything, "/pokemon/1/").Return(&model.PokemonDetail{Name: "bulbasaur"}, nil)
	fetcher.On("Detail", mock.Anything, "/pokemon/2/").Return(nil, pokeapi.ErrRequest)
	s := newTestSession(fetcher)

	before, err := s.Select(context.Background(), 1)
	require.NoError(t, err)

	after, err := s.Select(context.Background(), 2)
	assert.ErrorIs(t, err, pokeapi.ErrRequest)
	assert.Equal(t, before, after)
	assert.Equal(t, before, s.State())
	assert.Equal(t, 0, s.Pending())
}

func TestSessionSelectOutOfRange(t *testing.T) {
	s := newTestSession(&mockFetcher{})

	_, err := s.Select(context.Background(), 4)
	assert.ErrorIs(t, err, ErrNoSuchPokemon)
	assert.Equal(t, 0, s.State().Selected)
}

func TestSessionDiscardsStaleFetch(t *testing.T) {
	release := make(chan time.Time)
	fetcher := &mockFetcher{}
	fetcher.On("Detail", mock.Anything, "/pokemon/1/").
		WaitUntil(release).
		Return(&model.PokemonDetail{Name: "bulbasaur"}, nil)
	fetcher.On("Detail", mock.Anything, "/pokemon/3/").
		Return(&model.PokemonDetail{Name: "venusaur"}, nil)
	s := newTestSession(fetcher)

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = s.Select(context.Background(), 1)
	}()

	require.Eventually(t, func() bool { return s.Pending() == 1 }, time.Second, time.Millisecond)

	state, err := s.Select(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Selected)

	close(release)
	wg.Wait()

	assert.ErrorIs(t, slowErr, ErrStale)
	final := s.State()
	assert.Equal(t, 3, final.Selected)
	require.NotNil(t, final.Card)
	assert.Equal(t, "venusaur", final.Card.Name)
}
