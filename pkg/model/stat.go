package model

import (
	"errors"
	"fmt"
)

const (
	MinBaseStat = 0
	MaxBaseStat = 255
)

type Stat struct {
	Name string
	Base int
}

func (stat Stat) Valid() bool {
	return stat.Base >= MinBaseStat && stat.Base <= MaxBaseStat
}

type PokemonStats []Stat

var ErrNoStatFound = errors.New("could not find stat")

// BaseStat looks a stat up by its API name, e.g. "special-attack".
func (ps PokemonStats) BaseStat(name string) (int, error) {
	for _, stat := range ps {
		if stat.Name == name {
			return stat.Base, nil
		}
	}

	return 0, fmt.Errorf("pokemon has no stat with name %q: %w", name, ErrNoStatFound)
}

func (ps PokemonStats) Total() int {
	total := 0
	for _, stat := range ps {
		total += stat.Base
	}
	return total
}
