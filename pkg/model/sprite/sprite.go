package sprite

import "net/url"

// Sprite is the URL of a sprite image as served by the API.
type Sprite string

func (s Sprite) IsZero() bool {
	return s == ""
}

func (s Sprite) URL() string {
	return string(s)
}

// Valid reports whether the sprite is an absolute http(s) URL.
func (s Sprite) Valid() bool {
	u, err := url.Parse(string(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
