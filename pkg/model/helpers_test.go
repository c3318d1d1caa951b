package model

import (
	"bufio"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// kantoRoster loads the standard 151 entry roster from testdata.
func kantoRoster(t *testing.T) Roster {
	t.Helper()

	f, err := os.Open("testdata/kanto.txt")
	require.NoError(t, err)
	defer f.Close()

	var roster Roster
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		roster = append(roster, RosterEntry{
			Name:      scanner.Text(),
			DetailRef: fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", len(roster)+1),
		})
	}
	require.NoError(t, scanner.Err())
	require.Len(t, roster, RosterLimit)

	return roster
}
