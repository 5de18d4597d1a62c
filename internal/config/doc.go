// Package config loads pokesearch's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pokesearch/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are blank, use defaults for those fields
//
// # Fields
//
//	roster_url     = "http://localhost:3000/starting-react/pokemon.json"
//	roster_file    = ""      # local .json/.yaml roster; wins over roster_url
//	fetch_on_start = false   # true loads the roster as soon as the UI starts
//	log_file       = "~/.local/share/pokesearch/pokesearch.log"
//
// String values are trimmed and paths have a leading ~ expanded to the
// user's home directory. A file that exists but is not valid TOML is an
// error; everything else degrades to defaults.
//
// Command-line flags in cmd/pokesearch override the loaded values.
package config
