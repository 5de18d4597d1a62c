// Package state holds the search session: the loaded roster, the filter
// text, and the current selection.
//
// # State Machine
//
//	Empty ──WithRoster──→ Loaded ──WithRoster/WithFilter/WithSelection──→ Loaded
//
// Every transition is a method on the Session value that returns the next
// Session:
//
//   - WithRoster: a successful fetch. Replaces the roster wholesale and marks
//     the session loaded. Filter and selection survive; a selection that is
//     not part of the new roster is kept as-is.
//   - WithFilter: every edit of the filter input.
//   - WithSelection: row activation. At most one record is selected and there
//     is no transition that clears it.
//
// A failed fetch is not a transition; the caller logs and keeps the session.
//
// # Concurrency
//
// Session is owned by the Bubble Tea model and only touched from Update,
// which the runtime calls on a single goroutine. Fetches run inside tea.Cmd
// goroutines and hand their result back as a message, so no locking is
// needed here.
//
// # Derived Data
//
// Visible recomputes the filtered rows with pokedex.Filter on every call. It
// is cheap for roster sizes in the hundreds and keeps the rendered list a
// pure function of (Roster, Filter).
package state
