package pokedex

import "strings"

// MaxResults caps how many matches Filter returns.
const MaxResults = 20

// Filter returns the creatures whose English name contains text, ignoring
// case, in roster order and truncated to MaxResults. An empty text matches
// everything. The roster is never modified.
func Filter(roster []Creature, text string) []Creature {
	needle := strings.ToLower(text)
	out := make([]Creature, 0, min(len(roster), MaxResults))
	for _, c := range roster {
		if len(out) == MaxResults {
			break
		}
		if strings.Contains(strings.ToLower(c.Name.English), needle) {
			out = append(out, c)
		}
	}
	return out
}
