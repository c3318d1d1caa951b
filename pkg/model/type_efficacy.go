package model

import "strings"

// WeaknessTable maps a defending type to the attacking types that are super
// effective against it. Tables are treated as read-only once built.
type WeaknessTable map[TypeName][]TypeName

var defaultWeaknesses = WeaknessTable{
	Normal:   {Fighting},
	Fighting: {Flying, Psychic, Fairy},
	Flying:   {Electric, Ice, Rock},
	Poison:   {Ground, Psychic},
	Ground:   {Water, Grass, Ice},
	Rock:     {Fighting, Ground, Steel, Water, Grass},
	Bug:      {Flying, Rock, Fire},
	Ghost:    {Ghost, Dark},
	Steel:    {Fighting, Ground, Fire},
	Fire:     {Water, Rock, Ground},
	Water:    {Electric, Grass},
	Grass:    {Flying, Poison, Bug, Fire, Ice},
	Electric: {Ground},
	Psychic:  {Bug, Ghost, Dark},
	Ice:      {Fighting, Rock, Steel, Fire},
	Dragon:   {Ice, Dragon, Fairy},
	Fairy:    {Poison, Steel},
	Dark:     {Fighting, Bug, Fairy},
}

// DefaultWeaknesses returns a copy of the built-in single-type chart.
func DefaultWeaknesses() WeaknessTable {
	return defaultWeaknesses.Clone()
}

func (table WeaknessTable) Clone() WeaknessTable {
	clone := make(WeaknessTable, len(table))
	for typ, weaknesses := range table {
		clone[typ] = append([]TypeName(nil), weaknesses...)
	}
	return clone
}

type Resolver struct {
	table WeaknessTable
}

func NewResolver(table WeaknessTable) Resolver {
	return Resolver{table: table}
}

// WeaknessesOf unions the weaknesses of every given type in first-seen order.
// Types missing from the table contribute nothing. Dual-type resistances and
// immunities are not applied.
func (r Resolver) WeaknessesOf(types []TypeName) []TypeName {
	seen := make(map[TypeName]bool)
	weaknesses := make([]TypeName, 0, len(types)*3)
	for _, typ := range types {
		for _, w := range r.table[TypeName(strings.ToLower(string(typ)))] {
			if seen[w] {
				continue
			}
			seen[w] = true
			weaknesses = append(weaknesses, w)
		}
	}

	return weaknesses
}
