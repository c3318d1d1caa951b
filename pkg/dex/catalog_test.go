package dex

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/notjagan/dexview/pkg/dex/dextest"
	"github.com/notjagan/dexview/pkg/model"
	"github.com/notjagan/dexview/pkg/pokeapi"
)

func starterCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := Load(context.Background(), dextest.Starters(), model.NewResolver(model.DefaultWeaknesses()), zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestLoadFailure(t *testing.T) {
	fetcher := &mockFetcher{}
	fetcher.On("Roster", mock.Anything).Return(nil, pokeapi.ErrRequest)

	c, err := Load(context.Background(), fetcher, model.NewResolver(nil), zap.NewNop())
	assert.Nil(t, c)
	assert.ErrorIs(t, err, pokeapi.ErrRequest)
	fetcher.AssertExpectations(t)
}

func TestCatalogListing(t *testing.T) {
	c := starterCatalog(t)

	got := c.Listing("CHAR", model.SortByName)

	require.Len(t, got, 3)
	assert.Equal(t, []int{6, 4, 5}, []int{got[0].Number, got[1].Number, got[2].Number})
}

func TestCatalogLookup(t *testing.T) {
	c := starterCatalog(t)

	l, err := c.Lookup("Squirtle")
	require.NoError(t, err)
	assert.Equal(t, 7, l.Number)

	_, err = c.Lookup("pikachu")
	assert.ErrorIs(t, err, ErrNoSuchPokemon)
}

func TestCatalogCard(t *testing.T) {
	c := starterCatalog(t)

	card, err := c.Card(context.Background(), 6)
	require.NoError(t, err)

	assert.Equal(t, 6, card.Number)
	assert.Equal(t, "charizard", card.Name)
	assert.Equal(t, []model.TypeName{model.Fire, model.Flying}, card.Types)
	assert.Equal(t, []model.TypeName{model.Water, model.Rock, model.Ground, model.Electric, model.Ice}, card.Weaknesses)
	assert.Equal(t, 170, card.HeightCm)
	assert.Equal(t, 5, card.HeightFeet)
	assert.Equal(t, 7, card.HeightInches)
	assert.InDelta(t, 90.5, card.WeightKg, 1e-9)
	assert.Equal(t, 200, card.WeightLbs)
	assert.Equal(t, []string{"blaze"}, card.VisibleAbilities())
	assert.Equal(t, []string{"solar-power"}, card.HiddenAbilities())
	assert.Equal(t, 534, card.StatTotal())
	assert.Contains(t, card.SpriteURL, "/6.png")
	assert.Contains(t, card.ShinyURL, "/shiny/6.png")

	speed, err := card.BaseStat("speed")
	require.NoError(t, err)
	assert.Equal(t, 100, speed)

	_, err = card.BaseStat("evasion")
	assert.ErrorIs(t, err, model.ErrNoStatFound)
}

func TestCatalogCardErrors(t *testing.T) {
	c := starterCatalog(t)

	_, err := c.Card(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNoSuchPokemon)

	_, err = c.Card(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNoSuchPokemon)

	// ivysaur has no detail in the fixture
	_, err = c.Card(context.Background(), 2)
	assert.True(t, errors.Is(err, pokeapi.ErrNotFound))
}

func TestCatalogCards(t *testing.T) {
	c := starterCatalog(t)

	cards, err := c.Cards(context.Background(), c.Listing("", model.SortByNumber), 3)
	require.NoError(t, err)

	numbers := make([]int, 0, len(cards))
	for number, card := range cards {
		assert.Equal(t, number, card.Number)
		numbers = append(numbers, number)
	}
	assert.ElementsMatch(t, []int{3, 4, 6, 9}, numbers)
}

func TestCatalogCardsCancelled(t *testing.T) {
	c := starterCatalog(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Cards(ctx, c.Listing("", model.SortByNumber), 2)
	assert.ErrorIs(t, err, context.Canceled)
}
