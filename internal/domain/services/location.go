package services

import "strings"

// DefaultLocationAliases maps informal location words to catalog tags.
var DefaultLocationAliases = map[string]string{
	"indoor":  "home",
	"outdoor": "outside",
}

// LocationNormalizer maps user-supplied location words to canonical tags.
type LocationNormalizer struct {
	aliases map[string]string
}

// NewLocationNormalizer builds a normalizer from an alias map. Keys are
// matched case-insensitively. A nil map uses DefaultLocationAliases.
func NewLocationNormalizer(aliases map[string]string) *LocationNormalizer {
	if aliases == nil {
		aliases = DefaultLocationAliases
	}
	n := &LocationNormalizer{aliases: make(map[string]string, len(aliases))}
	for from, to := range aliases {
		n.aliases[strings.ToLower(strings.TrimSpace(from))] = strings.TrimSpace(to)
	}
	return n
}

// Normalize returns the canonical tag for location. Unknown words are
// returned trimmed but otherwise unchanged.
func (n *LocationNormalizer) Normalize(location string) string {
	location = strings.TrimSpace(location)
	if canonical, ok := n.aliases[strings.ToLower(location)]; ok {
		return canonical
	}
	return location
}
