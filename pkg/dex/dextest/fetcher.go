// Package dextest provides an in-memory dex.Fetcher for tests.
package dextest

import (
	"context"
	"fmt"

	"github.com/notjagan/dexview/pkg/model"
	"github.com/notjagan/dexview/pkg/model/sprite"
	"github.com/notjagan/dexview/pkg/pokeapi"
)

type Fetcher struct {
	Entries model.Roster
	Details map[string]*model.PokemonDetail
}

func (f *Fetcher) Roster(ctx context.Context) (model.Roster, error) {
	return f.Entries, nil
}

func (f *Fetcher) Detail(ctx context.Context, ref string) (*model.PokemonDetail, error) {
	detail, ok := f.Details[ref]
	if !ok {
		return nil, fmt.Errorf("GET %q: %w", ref, pokeapi.ErrNotFound)
	}
	return detail, nil
}

var charizardShiny sprite.Sprite = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/shiny/6.png"

func ref(number int) string {
	return fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", number)
}

// Starters returns a fetcher holding the first nine Kanto entries with
// details for the fully evolved starters and charmander.
func Starters() *Fetcher {
	names := []string{
		"bulbasaur", "ivysaur", "venusaur",
		"charmander", "charmeleon", "charizard",
		"squirtle", "wartortle", "blastoise",
	}

	f := &Fetcher{Details: make(map[string]*model.PokemonDetail)}
	for i, name := range names {
		f.Entries = append(f.Entries, model.RosterEntry{Name: name, DetailRef: ref(i + 1)})
	}

	f.Details[ref(3)] = &model.PokemonDetail{
		Name:      "venusaur",
		Height:    20,
		Weight:    1000,
		Types:     []model.TypeName{model.Grass, model.Poison},
		Abilities: []model.Ability{{Name: "overgrow"}, {Name: "chlorophyll", IsHidden: true}},
		Stats: []model.Stat{
			{Name: "hp", Base: 80}, {Name: "attack", Base: 82}, {Name: "defense", Base: 83},
			{Name: "special-attack", Base: 100}, {Name: "special-defense", Base: 100}, {Name: "speed", Base: 80},
		},
		Sprites: sprite.PokemonSprites{Sprites: sprite.Sprites{Front: sprite.Front{
			Default: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/3.png",
		}}},
	}
	f.Details[ref(4)] = &model.PokemonDetail{
		Name:      "charmander",
		Height:    6,
		Weight:    85,
		Types:     []model.TypeName{model.Fire},
		Abilities: []model.Ability{{Name: "blaze"}, {Name: "solar-power", IsHidden: true}},
		Stats: []model.Stat{
			{Name: "hp", Base: 39}, {Name: "attack", Base: 52}, {Name: "defense", Base: 43},
			{Name: "special-attack", Base: 60}, {Name: "special-defense", Base: 50}, {Name: "speed", Base: 65},
		},
	}
	f.Details[ref(6)] = &model.PokemonDetail{
		Name:      "charizard",
		Height:    17,
		Weight:    905,
		Types:     []model.TypeName{model.Fire, model.Flying},
		Abilities: []model.Ability{{Name: "blaze"}, {Name: "solar-power", IsHidden: true}},
		Stats: []model.Stat{
			{Name: "hp", Base: 78}, {Name: "attack", Base: 84}, {Name: "defense", Base: 78},
			{Name: "special-attack", Base: 109}, {Name: "special-defense", Base: 85}, {Name: "speed", Base: 100},
		},
		Sprites: sprite.PokemonSprites{Sprites: sprite.Sprites{Front: sprite.Front{
			Default: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/6.png",
			Shiny:   &charizardShiny,
		}}},
	}
	f.Details[ref(9)] = &model.PokemonDetail{
		Name:      "blastoise",
		Height:    16,
		Weight:    855,
		Types:     []model.TypeName{model.Water},
		Abilities: []model.Ability{{Name: "torrent"}, {Name: "rain-dish", IsHidden: true}},
		Stats: []model.Stat{
			{Name: "hp", Base: 79}, {Name: "attack", Base: 83}, {Name: "defense", Base: 100},
			{Name: "special-attack", Base: 85}, {Name: "special-defense", Base: 105}, {Name: "speed", Base: 78},
		},
	}

	return f
}
