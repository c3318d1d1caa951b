package command

import (
	"github.com/notjagan/dexview/pkg/dex"
)

// Discord accepts at most 25 autocomplete choices.
const defaultLimit = 25

type commandFunc func(*Builder) Command

type Builder struct {
	catalog *dex.Catalog

	funcs             []commandFunc
	autocompleteLimit int
	resultLimit       int
}

func NewBuilder(catalog *dex.Catalog) *Builder {
	return &Builder{
		catalog: catalog,
		funcs: []commandFunc{
			(*Builder).dex,
			(*Builder).weak,
			(*Builder).search,
		},
		autocompleteLimit: defaultLimit,
		resultLimit:       defaultLimit,
	}
}

func (builder *Builder) All() []Command {
	cmds := make([]Command, len(builder.funcs))
	for i, f := range builder.funcs {
		cmds[i] = f(builder)
	}
	return cmds
}

func All(catalog *dex.Catalog) []Command {
	return NewBuilder(catalog).All()
}
