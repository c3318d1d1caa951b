package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/model"
)

const noneValue = "_None_"

// typeColors are the embed accent colours keyed by primary type.
var typeColors = map[model.TypeName]int{
	model.Normal:   0xA8A77A,
	model.Fighting: 0xC22E28,
	model.Flying:   0xA98FF3,
	model.Poison:   0xA33EA1,
	model.Ground:   0xE2BF65,
	model.Rock:     0xB6A136,
	model.Bug:      0xA6B91A,
	model.Ghost:    0x735797,
	model.Steel:    0xB7B7CE,
	model.Fire:     0xEE8130,
	model.Water:    0x6390F0,
	model.Grass:    0x7AC74C,
	model.Electric: 0xF7D02C,
	model.Psychic:  0xF95587,
	model.Ice:      0x96D9D6,
	model.Dragon:   0x6F35FC,
	model.Fairy:    0xD685AD,
	model.Dark:     0x705746,
}

func embedColor(types []model.TypeName) int {
	if len(types) == 0 {
		return 0
	}
	return typeColors[types[0]]
}

func typeList(types []model.TypeName) string {
	if len(types) == 0 {
		return noneValue
	}
	return strings.Join(model.Titles(types), ", ")
}

func message(content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{Content: content}
}

func cardEmbed(card *dex.Card) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, 6+len(card.Stats))
	fields = append(fields,
		&discordgo.MessageEmbedField{Name: "Weaknesses", Value: typeList(card.Weaknesses)},
		&discordgo.MessageEmbedField{
			Name:   "Height",
			Value:  fmt.Sprintf("%d cm (%d'%d\")", card.HeightCm, card.HeightFeet, card.HeightInches),
			Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name:   "Weight",
			Value:  fmt.Sprintf("%.1f kg (%d lbs)", card.WeightKg, card.WeightLbs),
			Inline: true,
		},
	)

	abilities := discordgo.MessageEmbedField{Name: "Abilities", Value: noneValue}
	if visible := card.VisibleAbilities(); len(visible) > 0 {
		abilities.Value = strings.Join(visible, ", ")
	}
	fields = append(fields, &abilities)
	if hidden := card.HiddenAbilities(); len(hidden) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Hidden Abilities",
			Value:  strings.Join(hidden, ", "),
			Inline: true,
		})
	}

	if card.ShinyURL != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Shiny",
			Value:  fmt.Sprintf("[sprite](%s)", card.ShinyURL),
			Inline: true,
		})
	}

	for _, stat := range card.Stats {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   stat.Name,
			Value:  strconv.Itoa(stat.Base),
			Inline: true,
		})
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:   "total",
		Value:  strconv.Itoa(card.StatTotal()),
		Inline: true,
	})

	embed := &discordgo.MessageEmbed{
		Title:       card.Title(),
		Description: typeList(card.Types),
		Color:       embedColor(card.Types),
		Fields:      fields,
	}
	if card.SpriteURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: card.SpriteURL}
	}
	if card.ArtworkURL != "" && card.ArtworkURL != card.SpriteURL {
		embed.Image = &discordgo.MessageEmbedImage{URL: card.ArtworkURL}
	}

	return embed
}
