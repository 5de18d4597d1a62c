package pokedex

import "fmt"

const sampleRosterJSON = `[
  {"id": 1, "name": {"english": "Bulbasaur", "french": "Bulbizarre"}, "type": ["Grass", "Poison"],
   "base": {"HP": 45, "Attack": 49, "Defense": 49, "Sp. Attack": 65, "Sp. Defense": 65, "Speed": 45}},
  {"id": 4, "name": {"english": "Charmander"}, "type": ["Fire"],
   "base": {"HP": 39, "Attack": 52, "Defense": 43, "Sp. Attack": 60, "Sp. Defense": 50, "Speed": 65}}
]`

func numbered(prefix string, n int) []Creature {
	out := make([]Creature, n)
	for i := range out {
		out[i] = Creature{ID: i + 1, Name: Name{English: fmt.Sprintf("%s%02d", prefix, i+1)}}
	}
	return out
}
