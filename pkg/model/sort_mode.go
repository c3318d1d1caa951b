package model

//go:generate go tool enumer -type=SortMode -trimprefix=SortBy -transform=lower -text

type SortMode int

const (
	SortByNumber SortMode = iota
	SortByName
)

func (mode SortMode) Next() SortMode {
	return (mode + 1) % SortMode(len(_SortModeValues))
}
