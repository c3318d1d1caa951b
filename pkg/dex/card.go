package dex

import (
	"fmt"
	"strings"

	"github.com/notjagan/dexview/pkg/model"
)

type Card struct {
	Number     int
	Name       string
	Types      []model.TypeName
	Weaknesses []model.TypeName
	Abilities  []model.Ability
	Stats      []model.Stat

	HeightCm     int
	HeightFeet   int
	HeightInches int
	WeightKg     float64
	WeightLbs    int

	SpriteURL  string
	ShinyURL   string
	ArtworkURL string
}

func NewCard(l model.Listing, detail *model.PokemonDetail, resolver model.Resolver) *Card {
	feet, inches := detail.Height.FeetInches()
	sprite, _ := detail.SpriteURL()
	shiny, _ := detail.ShinyURL()
	artwork, _ := detail.ArtworkURL()

	return &Card{
		Number:       l.Number,
		Name:         detail.Name,
		Types:        append([]model.TypeName(nil), detail.Types...),
		Weaknesses:   resolver.WeaknessesOf(detail.Types),
		Abilities:    append([]model.Ability(nil), detail.Abilities...),
		Stats:        append([]model.Stat(nil), detail.Stats...),
		HeightCm:     detail.Height.Centimetres(),
		HeightFeet:   feet,
		HeightInches: inches,
		WeightKg:     detail.Weight.Kilograms(),
		WeightLbs:    detail.Weight.Pounds(),
		SpriteURL:    sprite,
		ShinyURL:     shiny,
		ArtworkURL:   artwork,
	}
}

func (card *Card) VisibleAbilities() []string {
	return card.abilities(false)
}

func (card *Card) HiddenAbilities() []string {
	return card.abilities(true)
}

func (card *Card) abilities(hidden bool) []string {
	names := make([]string, 0, len(card.Abilities))
	for _, a := range card.Abilities {
		if a.IsHidden == hidden {
			names = append(names, a.Name)
		}
	}
	return names
}

func (card *Card) BaseStat(name string) (int, error) {
	return model.PokemonStats(card.Stats).BaseStat(name)
}

func (card *Card) StatTotal() int {
	return model.PokemonStats(card.Stats).Total()
}

// Title is the heading shown above a card, e.g. "#006 Charizard".
func (card *Card) Title() string {
	return fmt.Sprintf("#%03d %s", card.Number, DisplayName(card.Name))
}

func DisplayName(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
