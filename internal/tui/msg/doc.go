// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// Every request to the task service runs inside a [tea.Cmd] built here and
// reports back with a message carrying the outcome, so the update loop is
// the only place the board store is touched.
package msg
