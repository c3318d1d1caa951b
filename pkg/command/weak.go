package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/model"
)

type weakOptions struct {
	Pokemon *struct {
		Name discordField[string] `option:"pokemon"`
	} `option:"pokemon"`
	Type *struct {
		Name1 discordField[string]  `option:"type_1"`
		Name2 *discordField[string] `option:"type_2"`
	} `option:"type"`
}

type weakResponder struct {
	catalog           *dex.Catalog
	autocompleteLimit int
}

func (resp weakResponder) Handle(ctx context.Context, opt *weakOptions) (*discordgo.InteractionResponseData, error) {
	var (
		title string
		types []model.TypeName
		thumb *discordgo.MessageEmbedThumbnail
	)

	switch {
	case opt.Pokemon != nil:
		card, reply, err := lookupCard(ctx, resp.catalog, opt.Pokemon.Name.Value)
		if reply != nil || err != nil {
			return reply, err
		}

		title = card.Title()
		types = card.Types
		if card.SpriteURL != "" {
			thumb = &discordgo.MessageEmbedThumbnail{URL: card.SpriteURL}
		}
	case opt.Type != nil:
		names := []string{opt.Type.Name1.Value}
		if opt.Type.Name2 != nil {
			names = append(names, opt.Type.Name2.Value)
		}

		for _, name := range names {
			typ, ok := model.ParseTypeName(name)
			if !ok {
				return message(fmt.Sprintf("%q is not a type.", name)), nil
			}
			types = append(types, typ)
		}
		title = strings.Join(model.Titles(types), " / ")
	default:
		return nil, fmt.Errorf("unrecognized subcommand for command \"weak\": %w", ErrCommandFormat)
	}

	weaknesses := resp.catalog.Resolver().WeaknessesOf(types)

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       title,
				Description: "Defensive weaknesses",
				Color:       embedColor(types),
				Thumbnail:   thumb,
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Type", Value: typeList(types)},
					{Name: "Weak to", Value: typeList(weaknesses)},
				},
			},
		},
	}, nil
}

func (resp weakResponder) Autocomplete(ctx context.Context, opt *weakOptions) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	switch {
	case opt.Pokemon != nil:
		if opt.Pokemon.Name.Focused {
			s := pokemonSearcher{
				catalog: resp.catalog,
				term:    opt.Pokemon.Name.Value,
				limit:   resp.autocompleteLimit,
			}
			return searchChoices[model.Listing](s), nil
		}
	case opt.Type != nil:
		var prefix string
		switch {
		case opt.Type.Name1.Focused:
			prefix = opt.Type.Name1.Value
		case opt.Type.Name2 != nil && opt.Type.Name2.Focused:
			prefix = opt.Type.Name2.Value
		default:
			return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
		}

		s := typeSearcher{
			prefix: prefix,
			limit:  resp.autocompleteLimit,
		}
		return searchChoices[model.TypeName](s), nil
	default:
		return nil, fmt.Errorf("no recognized subcommand in focus: %w", ErrCommandFormat)
	}

	return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
}

func (builder *Builder) weak() Command {
	resp := weakResponder{
		catalog:           builder.catalog,
		autocompleteLimit: builder.autocompleteLimit,
	}

	return command[weakOptions]{
		handler:       resp,
		autocompleter: resp,
		command: discordgo.ApplicationCommand{
			Name:        "weak",
			Description: "List the types a defending Pokemon or type combination is weak to.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pokemon",
					Description: "Weaknesses of a Pokemon",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "pokemon",
							Description:  "Name or number of the Pokemon",
							Required:     true,
							Autocomplete: true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "type",
					Description: "Weaknesses of a type combination",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "type_1",
							Description:  "First type",
							Required:     true,
							Autocomplete: true,
						},
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "type_2",
							Description:  "Second type",
							Required:     false,
							Autocomplete: true,
						},
					},
				},
			},
		},
	}
}
