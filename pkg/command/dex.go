package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/model"
)

type dexOptions struct {
	Pokemon *struct {
		Name discordField[string] `option:"pokemon"`
	} `option:"pokemon"`
}

type dexResponder struct {
	catalog           *dex.Catalog
	autocompleteLimit int
}

func (resp dexResponder) Handle(ctx context.Context, opt *dexOptions) (*discordgo.InteractionResponseData, error) {
	if opt.Pokemon == nil {
		return nil, fmt.Errorf("unrecognized subcommand for command \"dex\": %w", ErrCommandFormat)
	}

	card, reply, err := lookupCard(ctx, resp.catalog, opt.Pokemon.Name.Value)
	if reply != nil || err != nil {
		return reply, err
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{cardEmbed(card)},
	}, nil
}

func (resp dexResponder) Autocomplete(ctx context.Context, opt *dexOptions) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	if opt.Pokemon == nil || !opt.Pokemon.Name.Focused {
		return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
	}

	s := pokemonSearcher{
		catalog: resp.catalog,
		term:    opt.Pokemon.Name.Value,
		limit:   resp.autocompleteLimit,
	}
	return searchChoices[model.Listing](s), nil
}

// lookupCard resolves a user-supplied name or number to a card. A term that
// matches nothing yields a reply for the user rather than an error.
func lookupCard(ctx context.Context, catalog *dex.Catalog, term string) (*dex.Card, *discordgo.InteractionResponseData, error) {
	l, err := catalog.Lookup(term)
	if errors.Is(err, dex.ErrNoSuchPokemon) {
		return nil, message("No Pokemon found with that name."), nil
	} else if err != nil {
		return nil, nil, err
	}

	card, err := catalog.Card(ctx, l.Number)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get card for %q: %w", term, err)
	}

	return card, nil, nil
}

func (builder *Builder) dex() Command {
	resp := dexResponder{
		catalog:           builder.catalog,
		autocompleteLimit: builder.autocompleteLimit,
	}

	return command[dexOptions]{
		handler:       resp,
		autocompleter: resp,
		command: discordgo.ApplicationCommand{
			Name:        "dex",
			Description: "Look up a Pokemon.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pokemon",
					Description: "Show the card for a Pokemon",
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
			},
		},
	}
}
