package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/notjagan/dexview/pkg/model"
)

var typeColors = map[model.TypeName]lipgloss.Color{
	model.Normal:   lipgloss.Color("#A8A77A"),
	model.Fighting: lipgloss.Color("#C22E28"),
	model.Flying:   lipgloss.Color("#A98FF3"),
	model.Poison:   lipgloss.Color("#A33EA1"),
	model.Ground:   lipgloss.Color("#E2BF65"),
	model.Rock:     lipgloss.Color("#B6A136"),
	model.Bug:      lipgloss.Color("#A6B91A"),
	model.Ghost:    lipgloss.Color("#735797"),
	model.Steel:    lipgloss.Color("#B7B7CE"),
	model.Fire:     lipgloss.Color("#EE8130"),
	model.Water:    lipgloss.Color("#6390F0"),
	model.Grass:    lipgloss.Color("#7AC74C"),
	model.Electric: lipgloss.Color("#F7D02C"),
	model.Psychic:  lipgloss.Color("#F95587"),
	model.Ice:      lipgloss.Color("#96D9D6"),
	model.Dragon:   lipgloss.Color("#6F35FC"),
	model.Fairy:    lipgloss.Color("#D685AD"),
	model.Dark:     lipgloss.Color("#705746"),
}

type Styles struct {
	Title    lipgloss.Style
	Pane     lipgloss.Style
	Cursor   lipgloss.Style
	Row      lipgloss.Style
	Number   lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	StatBar  lipgloss.Style
	TypeChip lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EE1515")),
		Pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3B4CCA")).Padding(0, 1),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFDE00")),
		Row:      lipgloss.NewStyle(),
		Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Label:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935")),
		StatBar:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		TypeChip: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1),
	}
}

func (s Styles) typeChip(typ model.TypeName) string {
	style := s.TypeChip
	if color, ok := typeColors[typ]; ok {
		style = style.Background(color)
	}
	return style.Render(typ.Title())
}
