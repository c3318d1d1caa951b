package model

import (
	"github.com/notjagan/dexview/pkg/model/sprite"
)

type PokemonDetail struct {
	Name      string
	Height    Height
	Weight    Weight
	Types     []TypeName
	Abilities []Ability
	Stats     []Stat
	Sprites   sprite.PokemonSprites
}

// SpriteURL returns the default front sprite, if the API provided a usable one.
func (pokemon *PokemonDetail) SpriteURL() (string, bool) {
	return usable(pokemon.Sprites.Front.Default)
}

func (pokemon *PokemonDetail) ShinyURL() (string, bool) {
	if pokemon.Sprites.Front.Shiny == nil {
		return "", false
	}
	return usable(*pokemon.Sprites.Front.Shiny)
}

func (pokemon *PokemonDetail) ArtworkURL() (string, bool) {
	return usable(pokemon.Sprites.Artwork())
}

func usable(s sprite.Sprite) (string, bool) {
	if !s.Valid() {
		return "", false
	}
	return s.URL(), true
}
