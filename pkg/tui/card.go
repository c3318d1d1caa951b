package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/notjagan/dexview/pkg/dex"
	"github.com/notjagan/dexview/pkg/model"
)

const statBarWidth = 20

func statBar(base int) string {
	n := base * statBarWidth / model.MaxBaseStat
	if base > 0 && n == 0 {
		n = 1
	}
	return strings.Repeat("█", n) + strings.Repeat("░", statBarWidth-n)
}

func chips(styles Styles, types []model.TypeName) string {
	if len(types) == 0 {
		return styles.Muted.Render("none")
	}
	parts := make([]string, len(types))
	for i, typ := range types {
		parts[i] = styles.typeChip(typ)
	}
	return strings.Join(parts, " ")
}

func renderCard(styles Styles, card *dex.Card) string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(card.Title()))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "%s %s\n", styles.Label.Render("Type:"), chips(styles, card.Types))
	fmt.Fprintf(&sb, "%s %s\n", styles.Label.Render("Weak to:"), chips(styles, card.Weaknesses))
	fmt.Fprintf(&sb, "%s %d cm (%d'%d\")\n", styles.Label.Render("Height:"), card.HeightCm, card.HeightFeet, card.HeightInches)
	fmt.Fprintf(&sb, "%s %.1f kg (%d lbs)\n", styles.Label.Render("Weight:"), card.WeightKg, card.WeightLbs)

	abilities := strings.Join(card.VisibleAbilities(), ", ")
	if hidden := card.HiddenAbilities(); len(hidden) > 0 {
		abilities += styles.Muted.Render(" (hidden: " + strings.Join(hidden, ", ") + ")")
	}
	fmt.Fprintf(&sb, "%s %s\n\n", styles.Label.Render("Abilities:"), abilities)

	labelWidth := 0
	for _, stat := range card.Stats {
		labelWidth = max(labelWidth, lipgloss.Width(stat.Name))
	}
	for _, stat := range card.Stats {
		fmt.Fprintf(&sb, "%-*s %3d %s\n", labelWidth, stat.Name, stat.Base, styles.StatBar.Render(statBar(stat.Base)))
	}
	fmt.Fprintf(&sb, "%-*s %3d", labelWidth, "total", card.StatTotal())

	return sb.String()
}
