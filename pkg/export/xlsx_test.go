package export

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/dex/dextest"
	"github.com/notjagan/dexview/pkg/model"
)

func starterCatalog(t *testing.T) *dex.Catalog {
	t.Helper()

	catalog, err := dex.Load(context.Background(), dextest.Starters(), model.NewResolver(model.DefaultWeaknesses()), zap.NewNop())
	require.NoError(t, err)
	return catalog
}

func readRows(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestWriteListingOnly(t *testing.T) {
	catalog := starterCatalog(t)

	var buf bytes.Buffer
	err := Write(&buf, Workbook{Listings: catalog.Listing("char", model.SortByName)})
	require.NoError(t, err)

	want := [][]string{
		{"Number", "Name"},
		{"6", "Charizard"},
		{"4", "Charmander"},
		{"5", "Charmeleon"},
	}
	if diff := cmp.Diff(want, readRows(t, buf.Bytes(), ListingSheet)); diff != "" {
		t.Errorf("listing sheet mismatch (-want +got):\n%s", diff)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{ListingSheet}, f.GetSheetList())
}

func TestWriteWithCardsAndChart(t *testing.T) {
	catalog := starterCatalog(t)
	listings := catalog.Listing("char", model.SortByNumber)

	cards, err := catalog.Cards(context.Background(), listings, 2)
	require.NoError(t, err)
	resolver := catalog.Resolver()

	var buf bytes.Buffer
	err = Write(&buf, Workbook{Listings: listings, Cards: cards, Resolver: &resolver})
	require.NoError(t, err)

	want := [][]string{
		{"Number", "Name", "Types", "Weak to", "Height (cm)", "Weight (kg)", "HP", "Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed", "Total"},
		{"4", "Charmander", "Fire", "Water, Rock, Ground", "60", "8.5", "39", "52", "43", "60", "50", "65", "309"},
		{"5", "Charmeleon"},
		{"6", "Charizard", "Fire, Flying", "Water, Rock, Ground, Electric, Ice", "170", "90.5", "78", "84", "78", "109", "85", "100", "534"},
	}
	if diff := cmp.Diff(want, readRows(t, buf.Bytes(), ListingSheet)); diff != "" {
		t.Errorf("listing sheet mismatch (-want +got):\n%s", diff)
	}

	chart := readRows(t, buf.Bytes(), ChartSheet)
	require.Len(t, chart, len(model.AllTypes)+1)
	assert.Equal(t, []string{"Type", "Weak to"}, chart[0])
	assert.Contains(t, chart, []string{"Ghost", "Ghost, Dark"})
	assert.Contains(t, chart, []string{"Normal", "Fighting"})
}

func TestWriteLeavesMissingStatsBlank(t *testing.T) {
	listing := model.Listing{Number: 132, Entry: model.RosterEntry{Name: "ditto"}}
	card := &dex.Card{
		Number: 132,
		Name:   "ditto",
		Types:  []model.TypeName{model.Normal},
		Stats:  []model.Stat{{Name: "hp", Base: 48}, {Name: "speed", Base: 48}},
	}

	var buf bytes.Buffer
	err := Write(&buf, Workbook{Listings: []model.Listing{listing}, Cards: map[int]*dex.Card{132: card}})
	require.NoError(t, err)

	rows := readRows(t, buf.Bytes(), ListingSheet)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"132", "Ditto", "Normal", "", "0", "0", "48", "", "", "", "", "48", "96"}, rows[1])
}

func TestWriteFile(t *testing.T) {
	catalog := starterCatalog(t)
	path := filepath.Join(t.TempDir(), "dex.xlsx")

	err := WriteFile(path, Workbook{Listings: catalog.Listing("", model.SortByNumber)})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ListingSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 10)
	assert.Equal(t, []string{"9", "Blastoise"}, rows[9])
}
