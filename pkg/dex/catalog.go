// Package dex joins the roster, the detail fetcher and the weakness resolver
// into the views the front ends render.
package dex

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/notjagan/dexview/pkg/model"
)

type Fetcher interface {
	Roster(ctx context.Context) (model.Roster, error)
	Detail(ctx context.Context, ref string) (*model.PokemonDetail, error)
}

var ErrNoSuchPokemon = errors.New("no pokemon with that name or number")

type Catalog struct {
	fetcher  Fetcher
	resolver model.Resolver
	logger   *zap.Logger
	roster   model.Roster
}

// Load fetches the roster once. A failed fetch is returned and nothing is
// built.
func Load(ctx context.Context, fetcher Fetcher, resolver model.Resolver, logger *zap.Logger) (*Catalog, error) {
	roster, err := fetcher.Roster(ctx)
	if err != nil {
		logger.Error("failed to fetch roster", zap.Error(err))
		return nil, fmt.Errorf("error while loading roster: %w", err)
	}
	logger.Info("loaded roster", zap.Int("entries", len(roster)))

	return NewCatalog(roster, fetcher, resolver, logger), nil
}

func NewCatalog(roster model.Roster, fetcher Fetcher, resolver model.Resolver, logger *zap.Logger) *Catalog {
	return &Catalog{
		fetcher:  fetcher,
		resolver: resolver,
		logger:   logger,
		roster:   roster,
	}
}

func (c *Catalog) Roster() model.Roster {
	return c.roster
}

func (c *Catalog) Resolver() model.Resolver {
	return c.resolver
}

func (c *Catalog) Listing(term string, mode model.SortMode) []model.Listing {
	return model.Query(c.roster, term, mode)
}

func (c *Catalog) Lookup(term string) (model.Listing, error) {
	l, ok := c.roster.Find(term)
	if !ok {
		return model.Listing{}, fmt.Errorf("lookup %q: %w", term, ErrNoSuchPokemon)
	}
	return l, nil
}

// Card fetches the detail record for a display number and derives its card.
func (c *Catalog) Card(ctx context.Context, number int) (*Card, error) {
	entry, ok := c.roster.Entry(number)
	if !ok {
		return nil, fmt.Errorf("no roster entry #%d: %w", number, ErrNoSuchPokemon)
	}

	detail, err := c.fetcher.Detail(ctx, entry.DetailRef)
	if err != nil {
		c.logger.Warn("failed to fetch pokemon detail",
			zap.Int("number", number),
			zap.String("name", entry.Name),
			zap.Error(err),
		)
		return nil, fmt.Errorf("could not get detail for %q: %w", entry.Name, err)
	}

	return NewCard(model.Listing{Number: number, Entry: entry}, detail, c.resolver), nil
}

// Cards fetches the cards for listings with at most limit requests in
// flight. Listings whose fetch fails are logged by Card and left out of the
// result; only cancellation of ctx is returned as an error.
func (c *Catalog) Cards(ctx context.Context, listings []model.Listing, limit int) (map[int]*Card, error) {
	var mu sync.Mutex
	cards := make(map[int]*Card, len(listings))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for _, l := range listings {
		g.Go(func() error {
			card, err := c.Card(gctx, l.Number)
			if err != nil {
				return gctx.Err()
			}

			mu.Lock()
			cards[l.Number] = card
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, fmt.Errorf("error while fetching cards: %w", err)
	}

	return cards, nil
}
