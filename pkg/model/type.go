package model

import "strings"

type TypeName string

const (
	Normal   TypeName = "normal"
	Fighting TypeName = "fighting"
	Flying   TypeName = "flying"
	Poison   TypeName = "poison"
	Ground   TypeName = "ground"
	Rock     TypeName = "rock"
	Bug      TypeName = "bug"
	Ghost    TypeName = "ghost"
	Steel    TypeName = "steel"
	Fire     TypeName = "fire"
	Water    TypeName = "water"
	Grass    TypeName = "grass"
	Electric TypeName = "electric"
	Psychic  TypeName = "psychic"
	Ice      TypeName = "ice"
	Dragon   TypeName = "dragon"
	Fairy    TypeName = "fairy"
	Dark     TypeName = "dark"
)

var AllTypes = []TypeName{
	Normal, Fighting, Flying, Poison, Ground, Rock, Bug, Ghost, Steel,
	Fire, Water, Grass, Electric, Psychic, Ice, Dragon, Fairy, Dark,
}

func ParseTypeName(s string) (TypeName, bool) {
	typ := TypeName(strings.ToLower(strings.TrimSpace(s)))
	return typ, typ.IsKnown()
}

func (typ TypeName) IsKnown() bool {
	for _, t := range AllTypes {
		if t == typ {
			return true
		}
	}
	return false
}

// Title returns the display form of the type, e.g. "Water".
func (typ TypeName) Title() string {
	if typ == "" {
		return ""
	}
	return strings.ToUpper(string(typ[:1])) + string(typ[1:])
}

func Titles(types []TypeName) []string {
	titles := make([]string, len(types))
	for i, typ := range types {
		titles[i] = typ.Title()
	}
	return titles
}
