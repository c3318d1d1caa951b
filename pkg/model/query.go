package model

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Query filters the roster by name or display number and orders the matches.
// Display numbers always refer to positions in the unfiltered roster.
func Query(roster Roster, term string, mode SortMode) []Listing {
	term = strings.ToLower(strings.TrimSpace(term))

	listings := make([]Listing, 0, len(roster))
	for i, entry := range roster {
		number := i + 1
		if matches(entry, number, term) {
			listings = append(listings, Listing{Number: number, Entry: entry})
		}
	}

	switch mode {
	case SortByName:
		slices.SortFunc(listings, func(a, b Listing) int {
			if c := strings.Compare(strings.ToLower(a.Entry.Name), strings.ToLower(b.Entry.Name)); c != 0 {
				return c
			}
			return cmp.Compare(a.Number, b.Number)
		})
	default:
		// already in roster order
	}

	return listings
}

func matches(entry RosterEntry, number int, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(entry.Name), term) ||
		strings.Contains(strconv.Itoa(number), term)
}
