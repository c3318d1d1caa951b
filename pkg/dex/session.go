package dex

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/notjagan/dexview/pkg/model"
)

// ErrStale is returned when a fetch finishes after a newer selection was made.
var ErrStale = errors.New("selection superseded by a newer one")

type Session struct {
	catalog *Catalog
	logger  *zap.Logger

	mu         sync.Mutex
	state      ViewState
	generation uint64
	pending    int
}

func NewSession(catalog *Catalog, initial ViewState, logger *zap.Logger) *Session {
	return &Session{
		catalog: catalog,
		logger:  logger,
		state:   initial,
	}
}

func (s *Session) Catalog() *Catalog {
	return s.catalog
}

func (s *Session) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Listing() []model.Listing {
	return s.State().Listing(s.catalog.Roster())
}

func (s *Session) update(reduce func(ViewState) ViewState) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state)
	return s.state
}

func (s *Session) Search(term string) ViewState {
	return s.update(func(v ViewState) ViewState { return v.WithSearch(term) })
}

func (s *Session) SetSort(mode model.SortMode) ViewState {
	return s.update(func(v ViewState) ViewState { return v.WithSort(mode) })
}

func (s *Session) ToggleSort() ViewState {
	return s.update(ViewState.ToggleSort)
}

// Pending returns the display number of the most recent selection whose
// fetch has not completed, or 0.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Select fetches the card for a display number and makes it the selection.
// The result is applied only if no other selection started in the meantime;
// otherwise ErrStale is returned. Fetch failures are logged and leave the
// state unchanged.
func (s *Session) Select(ctx context.Context, number int) (ViewState, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.pending = number
	s.mu.Unlock()

	card, err := s.catalog.Card(ctx, number)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("discarding stale selection",
			zap.Int("number", number),
			zap.Uint64("generation", gen),
			zap.Uint64("latest", s.generation),
		)
		return s.state, fmt.Errorf("selection #%d: %w", number, ErrStale)
	}
	s.pending = 0

	if err != nil {
		s.logger.Error("failed to select pokemon", zap.Int("number", number), zap.Error(err))
		return s.state, fmt.Errorf("error while selecting #%d: %w", number, err)
	}

	s.state = s.state.WithSelection(number).WithCard(card)
	return s.state, nil
}
