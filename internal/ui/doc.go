// Package ui provides the Bubble Tea terminal interface for pokesearch.
//
// # Layout
//
//	┌ header: title, roster counts, source ──────────────────────┐
//	│ command bar                                                 │
//	│ Filter: ▏                                                   │
//	├ Pokemon (70%) ───────────────────────┬ Details (30%) ───────┤
//	│   Name             Type              │ Charmander           │
//	│ ● Charmander       Fire              │ #004  Fire           │
//	│   Charmeleon       Fire              │ HP            39     │
//	└──────────────────────────────────────┴──────────────────────┘
//
// # Event Flow
//
// The Model owns a state.Session and applies its transitions from Update:
//
//   - Filter edits go through bubbles/textinput; every change in its value
//     becomes Session.WithFilter.
//   - enter/space on a table row becomes Session.WithSelection.
//   - r (or fetch_on_start, from Init) returns a tea.Cmd that calls the
//     RosterSource once. Success arrives as rosterLoadedMsg and becomes
//     Session.WithRoster; failure arrives as rosterFailedMsg and is only
//     logged.
//
// The table always shows Session.Visible(), so it is a pure function of the
// roster and filter. The cursor is UI state and is clamped whenever the
// visible rows change; it is separate from the selection.
//
// # Files
//
//   - app.go: Model, Update, key handling, fetch command, Run
//   - view.go: header, command bar and pane layout
//   - roster.go: table rendering
//   - detail.go: selected creature and the "no filter" heading
//   - help.go: help overlay built from keyMap.FullHelp
//   - theme.go: color themes (T cycles, persisted through prefs)
//   - keys.go: key bindings
package ui
