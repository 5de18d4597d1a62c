// Package app is the composition root for pokesearch.
//
// Run loads the TOML config, applies command-line overrides, points the
// standard logger at the log file, builds the roster source and hands
// everything to ui.Run, which blocks until the user quits or the context is
// cancelled.
//
//	Run()
//	  ├─> config.Load()        ~/.config/pokesearch/config.toml
//	  ├─> applyOverrides()     -url / -file / -fetch flags
//	  ├─> setupLogging()       tea.LogToFile
//	  ├─> pokedex.NewSource()  HTTP client or local file
//	  ├─> prefs.Load()         theme, stat bars
//	  └─> ui.Run()             Bubble Tea program (blocks)
//
// Only startup problems are returned as errors: an unreadable or invalid
// config, a log file that cannot be opened, or a malformed roster URL. Once
// the UI is running, fetch failures are written to the log and otherwise
// ignored.
package app
