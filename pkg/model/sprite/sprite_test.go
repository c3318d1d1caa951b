package sprite

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pokeAPISprites = `{
	"front_default": "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/25.png",
	"front_shiny": "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/shiny/25.png",
	"front_female": null,
	"back_default": "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/back/25.png",
	"other": {
		"official-artwork": {
			"front_default": "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/25.png"
		}
	}
}`

func TestPokemonSpritesDecode(t *testing.T) {
	var ps PokemonSprites
	require.NoError(t, json.Unmarshal([]byte(pokeAPISprites), &ps))

	assert.True(t, ps.Front.Default.Valid())
	require.NotNil(t, ps.Front.Shiny)
	assert.Contains(t, ps.Front.Shiny.URL(), "/shiny/25.png")
	assert.Contains(t, ps.Artwork().URL(), "official-artwork")
}

func TestArtworkFallsBackToFront(t *testing.T) {
	ps := PokemonSprites{Sprites: Sprites{Front: Front{Default: "https://example.test/1.png"}}}

	assert.Equal(t, Sprite("https://example.test/1.png"), ps.Artwork())
}

func TestMissingShinyDecodesNil(t *testing.T) {
	var ps PokemonSprites
	require.NoError(t, json.Unmarshal([]byte(`{"front_default": "https://example.test/1.png", "front_shiny": null}`), &ps))

	assert.Nil(t, ps.Front.Shiny)
}

func TestSpriteValid(t *testing.T) {
	assert.False(t, Sprite("").Valid())
	assert.False(t, Sprite("/sprites/1.png").Valid())
	assert.True(t, Sprite("http://example.test/1.png").Valid())
}
