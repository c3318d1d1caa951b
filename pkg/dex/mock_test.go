package dex

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/notjagan/dexview/pkg/model"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Roster(ctx context.Context) (model.Roster, error) {
	args := m.Called(ctx)
	roster, _ := args.Get(0).(model.Roster)
	return roster, args.Error(1)
}

func (m *mockFetcher) Detail(ctx context.Context, ref string) (*model.PokemonDetail, error) {
	args := m.Called(ctx, ref)
	detail, _ := args.Get(0).(*model.PokemonDetail)
	return detail, args.Error(1)
}
