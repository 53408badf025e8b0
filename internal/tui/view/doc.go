// Package view renders the board. Every function here is pure: it takes
// the state to draw and returns a string, leaving input handling and the
// task store to the parent model.
//
// # Components
//
//   - [Renderer.Board]: the three status columns side by side
//   - [Renderer.Column]: one status column with its cards in store order
//   - [Renderer.Card]: a card in display or inline edit state, with move
//     controls on the focused card
//   - [Renderer.Form]: the creation form
//   - [Renderer.Banner]: the dismissible error banner
//   - [Renderer.Confirm]: the delete confirmation dialog
//   - [Renderer.Help]: the help bar, compact or grouped by category
//   - [Renderer.Loading]: the screen shown until the first list finishes
//
// # Basic Usage
//
//	r := view.NewRenderer(styles.Active(), locale.New("pt-BR"))
//	out := r.Board(view.BoardState{
//	    Columns:     store.Columns(),
//	    FocusColumn: 0,
//	    FocusRow:    0,
//	    ColumnWidth: 34,
//	})
package view
