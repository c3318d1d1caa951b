package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/model"
)

type searchOptions struct {
	Term *discordField[string] `option:"term"`
	Sort *discordField[string] `option:"sort"`
}

type searchResponder struct {
	catalog     *dex.Catalog
	resultLimit int
}

func (resp searchResponder) Handle(ctx context.Context, opt *searchOptions) (*discordgo.InteractionResponseData, error) {
	var term string
	if opt.Term != nil {
		term = opt.Term.Value
	}

	mode := model.SortByNumber
	if opt.Sort != nil {
		var err error
		mode, err = model.SortModeString(opt.Sort.Value)
		if err != nil {
			return nil, fmt.Errorf("unrecognized sort %q: %w", opt.Sort.Value, ErrCommandFormat)
		}
	}

	listings := resp.catalog.Listing(term, mode)
	if len(listings) == 0 {
		return message("No Pokemon match that search."), nil
	}

	shown := listings
	if len(shown) > resp.resultLimit {
		shown = shown[:resp.resultLimit]
	}

	lines := make([]string, len(shown))
	for i, l := range shown {
		lines[i] = fmt.Sprintf("`#%03d` %s", l.Number, dex.DisplayName(l.Entry.Name))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%d of %d Pokemon", len(listings), len(resp.catalog.Roster())),
		Description: strings.Join(lines, "\n"),
	}
	if hidden := len(listings) - len(shown); hidden > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("and %d more, narrow the search to see them", hidden),
		}
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, nil
}

func sortChoices() []*discordgo.ApplicationCommandOptionChoice {
	modes := model.SortModeValues()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(modes))
	for i, mode := range modes {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  "by " + mode.String(),
			Value: mode.String(),
		}
	}
	return choices
}

func (builder *Builder) search() Command {
	return command[searchOptions]{
		handler: searchResponder{
			catalog:     builder.catalog,
			resultLimit: builder.resultLimit,
		},
		command: discordgo.ApplicationCommand{
			Name:        "search",
			Description: "Search the Pokedex by name or number.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "term",
					Description: "Part of a name or number",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "sort",
					Description: "Result order",
					Required:    false,
					Choices:     sortChoices(),
				},
			},
		},
	}
}
