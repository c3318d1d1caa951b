package model

import (
	"strconv"
	"strings"
)

// RosterLimit is the number of entries requested from the list endpoint.
const RosterLimit = 151

type RosterEntry struct {
	Name      string `json:"name"`
	DetailRef string `json:"url"`
}

type Roster []RosterEntry

// Listing is a roster entry tagged with its position in the unfiltered roster.
type Listing struct {
	Number int
	Entry  RosterEntry
}

func (r Roster) Entry(number int) (RosterEntry, bool) {
	if number < 1 || number > len(r) {
		return RosterEntry{}, false
	}
	return r[number-1], true
}

// Find resolves an exact name (case-insensitive) or a display number.
func (r Roster) Find(term string) (Listing, bool) {
	term = strings.TrimSpace(term)
	if n, err := strconv.Atoi(term); err == nil {
		entry, ok := r.Entry(n)
		return Listing{Number: n, Entry: entry}, ok
	}

	for i, entry := range r {
		if strings.EqualFold(entry.Name, term) {
			return Listing{Number: i + 1, Entry: entry}, true
		}
	}
	return Listing{}, false
}
