package model

type Ability struct {
	Name     string
	IsHidden bool
}
