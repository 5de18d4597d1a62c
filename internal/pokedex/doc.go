// Package pokedex holds the creature roster model and the sources it is
// loaded from.
//
// # Data Model
//
// A roster document is a JSON array of creature records:
//
//	{
//	  "id": 1,
//	  "name": {"english": "Bulbasaur", "japanese": "...", "chinese": "...", "french": "Bulbizarre"},
//	  "type": ["Grass", "Poison"],
//	  "base": {"HP": 45, "Attack": 49, "Defense": 49, "Sp. Attack": 65, "Sp. Defense": 65, "Speed": 45}
//	}
//
// Stats decodes "base" into an ordered slice so the detail view can list the
// stats in document order. Records are read-only once decoded; nothing in
// this package validates that all six StatKeys are present.
//
// # Sources
//
//   - Client: one GET against the roster URL (default DefaultRosterURL), no
//     custom headers, no retry. A 5 second timeout bounds the request.
//   - FileSource: a local .json, .yaml or .yml document, useful offline.
//
// Both satisfy RosterSource, which the UI calls from a Bubble Tea command.
//
// # Filtering
//
// Filter is the pure list derivation used on every render: case-insensitive
// substring match on the English name, roster order, at most MaxResults rows.
package pokedex
