package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notjagan/dexview/pkg/model/sprite"
)

func TestPokemonDetailSprites(t *testing.T) {
	shiny := sprite.Sprite("https://example.test/shiny/25.png")
	detail := PokemonDetail{Sprites: sprite.PokemonSprites{
		Sprites: sprite.Sprites{Front: sprite.Front{Default: "https://example.test/25.png", Shiny: &shiny}},
		Other: map[string]sprite.Sprites{
			sprite.OfficialArtwork: {Front: sprite.Front{Default: "https://example.test/art/25.png"}},
		},
	}}

	u, ok := detail.SpriteURL()
	assert.True(t, ok)
	assert.Equal(t, "https://example.test/25.png", u)

	u, ok = detail.ShinyURL()
	assert.True(t, ok)
	assert.Equal(t, "https://example.test/shiny/25.png", u)

	u, ok = detail.ArtworkURL()
	assert.True(t, ok)
	assert.Equal(t, "https://example.test/art/25.png", u)
}

func TestPokemonDetailRejectsUnusableSprites(t *testing.T) {
	relative := sprite.Sprite("/sprites/pokemon/shiny/25.png")
	detail := PokemonDetail{Sprites: sprite.PokemonSprites{
		Sprites: sprite.Sprites{Front: sprite.Front{Default: "sprites/25.png", Shiny: &relative}},
	}}

	_, ok := detail.SpriteURL()
	assert.False(t, ok)

	_, ok = detail.ShinyURL()
	assert.False(t, ok)

	_, ok = detail.ArtworkURL()
	assert.False(t, ok)

	detail.Sprites.Front.Shiny = nil
	_, ok = detail.ShinyURL()
	assert.False(t, ok)
}

func TestPokemonStatsBaseStat(t *testing.T) {
	stats := PokemonStats{{Name: "hp", Base: 35}, {Name: "speed", Base: 90}}

	base, err := stats.BaseStat("speed")
	assert.NoError(t, err)
	assert.Equal(t, 90, base)

	_, err = stats.BaseStat("attack")
	assert.ErrorIs(t, err, ErrNoStatFound)
}
