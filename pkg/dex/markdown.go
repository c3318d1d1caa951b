package dex

import (
	"fmt"
	"strings"

	"github.com/notjagan/dexview/pkg/model"
)

// Markdown renders the card as a markdown document for terminal renderers.
func (card *Card) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", card.Title())
	if card.SpriteURL != "" {
		fmt.Fprintf(&sb, "![%s](%s)\n\n", card.Name, card.SpriteURL)
	}

	fmt.Fprintf(&sb, "**Type:** %s\n\n", joinTypes(card.Types))
	fmt.Fprintf(&sb, "**Weak to:** %s\n\n", joinTypes(card.Weaknesses))
	fmt.Fprintf(&sb, "**Height:** %d cm (%d'%d\")\n\n", card.HeightCm, card.HeightFeet, card.HeightInches)
	fmt.Fprintf(&sb, "**Weight:** %.1f kg (%d lbs)\n\n", card.WeightKg, card.WeightLbs)

	abilities := strings.Join(card.VisibleAbilities(), ", ")
	if hidden := card.HiddenAbilities(); len(hidden) > 0 {
		abilities += fmt.Sprintf(" _(hidden: %s)_", strings.Join(hidden, ", "))
	}
	fmt.Fprintf(&sb, "**Abilities:** %s\n\n", abilities)

	sb.WriteString("| Stat | Base |\n|---|---:|\n")
	for _, stat := range card.Stats {
		fmt.Fprintf(&sb, "| %s | %d |\n", stat.Name, stat.Base)
	}
	fmt.Fprintf(&sb, "| **total** | **%d** |\n", card.StatTotal())

	return sb.String()
}

func joinTypes(types []model.TypeName) string {
	if len(types) == 0 {
		return "_none_"
	}
	return strings.Join(model.Titles(types), ", ")
}
