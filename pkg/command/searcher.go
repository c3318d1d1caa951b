package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/model"
)

type searcher[T any] interface {
	Search() []T
	Choice(T) *discordgo.ApplicationCommandOptionChoice
}

type pokemonSearcher struct {
	catalog *dex.Catalog
	term    string
	limit   int
}

func (s pokemonSearcher) Search() []model.Listing {
	results := s.catalog.Listing(s.term, model.SortByNumber)
	if len(results) > s.limit {
		results = results[:s.limit]
	}
	return results
}

func (pokemonSearcher) Choice(l model.Listing) *discordgo.ApplicationCommandOptionChoice {
	return &discordgo.ApplicationCommandOptionChoice{
		Name:  fmt.Sprintf("#%03d %s", l.Number, dex.DisplayName(l.Entry.Name)),
		Value: l.Entry.Name,
	}
}

type typeSearcher struct {
	prefix string
	limit  int
}

func (s typeSearcher) Search() []model.TypeName {
	prefix := strings.ToLower(strings.TrimSpace(s.prefix))

	results := make([]model.TypeName, 0, s.limit)
	for _, typ := range model.AllTypes {
		if len(results) == s.limit {
			break
		}
		if strings.HasPrefix(string(typ), prefix) {
			results = append(results, typ)
		}
	}
	return results
}

func (typeSearcher) Choice(typ model.TypeName) *discordgo.ApplicationCommandOptionChoice {
	return &discordgo.ApplicationCommandOptionChoice{
		Name:  typ.Title(),
		Value: string(typ),
	}
}

func searchChoices[T any](s searcher[T]) []*discordgo.ApplicationCommandOptionChoice {
	results := s.Search()

	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(results))
	for i, res := range results {
		choices[i] = s.Choice(res)
	}
	return choices
}
