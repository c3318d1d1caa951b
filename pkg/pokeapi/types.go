package pokeapi

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/notjagan/dexview/pkg/model"
	"github.com/notjagan/dexview/pkg/model/sprite"
)

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listResponse struct {
	Count   int                 `json:"count"`
	Next    *string             `json:"next"`
	Results []model.RosterEntry `json:"results"`
}

func (resp listResponse) roster() model.Roster {
	results := resp.Results
	if len(results) > model.RosterLimit {
		results = results[:model.RosterLimit]
	}
	return model.Roster(results)
}

type pokemonType struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type pokemonAbility struct {
	Ability  namedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type pokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     namedResource `json:"stat"`
}

type pokemonResponse struct {
	ID        int                   `json:"id"`
	Name      string                `json:"name"`
	Height    int                   `json:"height"`
	Weight    int                   `json:"weight"`
	Types     []pokemonType         `json:"types"`
	Abilities []pokemonAbility      `json:"abilities"`
	Stats     []pokemonStat         `json:"stats"`
	Sprites   sprite.PokemonSprites `json:"sprites"`
}

func (resp pokemonResponse) detail() (*model.PokemonDetail, error) {
	if resp.Name == "" {
		return nil, fmt.Errorf("pokemon has no name: %w", ErrMalformed)
	}

	types := append([]pokemonType(nil), resp.Types...)
	slices.SortStableFunc(types, func(a, b pokemonType) int {
		return cmp.Compare(a.Slot, b.Slot)
	})

	detail := &model.PokemonDetail{
		Name:      resp.Name,
		Height:    model.Height(resp.Height),
		Weight:    model.Weight(resp.Weight),
		Types:     make([]model.TypeName, len(types)),
		Abilities: make([]model.Ability, len(resp.Abilities)),
		Stats:     make([]model.Stat, len(resp.Stats)),
		Sprites:   resp.Sprites,
	}

	for i, t := range types {
		detail.Types[i] = model.TypeName(t.Type.Name)
	}

	for i, a := range resp.Abilities {
		detail.Abilities[i] = model.Ability{Name: a.Ability.Name, IsHidden: a.IsHidden}
	}

	for i, s := range resp.Stats {
		stat := model.Stat{Name: s.Stat.Name, Base: s.BaseStat}
		if !stat.Valid() {
			return nil, fmt.Errorf("stat %q of %q out of range: %d: %w", stat.Name, resp.Name, stat.Base, ErrMalformed)
		}
		detail.Stats[i] = stat
	}

	return detail, nil
}
