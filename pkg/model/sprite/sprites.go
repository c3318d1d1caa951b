package sprite

// Front holds the front-facing sprites of a Pokemon. Only the default is
// guaranteed; the API sends null for the rest when they do not exist.
type Front struct {
	Default Sprite  `json:"front_default"`
	Shiny   *Sprite `json:"front_shiny"`
}

type Sprites struct {
	Front
}

type PokemonSprites struct {
	Sprites
	Other map[string]Sprites `json:"other"`
}

const OfficialArtwork = "official-artwork"

// Artwork returns the official artwork if present, falling back to the
// default front sprite.
func (ps *PokemonSprites) Artwork() Sprite {
	if other, ok := ps.Other[OfficialArtwork]; ok && !other.Front.Default.IsZero() {
		return other.Front.Default
	}
	return ps.Front.Default
}
