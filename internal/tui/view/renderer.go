package view

import (
	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
)

// Column width bounds in cells. A column narrower than MinColumnWidth
// cannot show a card title and its controls.
const (
	MinColumnWidth     = 20
	MaxColumnWidth     = 80
	DefaultColumnWidth = 34
)

// Frame sizes of the bordered, padded boxes.
const (
	columnFrame = 4 // border + horizontal padding
	cardFrame   = 4
)

// ClampColumnWidth forces w into [MinColumnWidth, MaxColumnWidth]. Zero
// selects DefaultColumnWidth.
func ClampColumnWidth(w int) int {
	switch {
	case w == 0:
		return DefaultColumnWidth
	case w < MinColumnWidth:
		return MinColumnWidth
	case w > MaxColumnWidth:
		return MaxColumnWidth
	}
	return w
}

// Renderer draws board components with one set of styles and one language.
type Renderer struct {
	styles *styles.ThemedStyles
	text   *locale.Translator
}

// NewRenderer creates a Renderer. A nil styles uses the active theme.
func NewRenderer(st *styles.ThemedStyles, tr *locale.Translator) *Renderer {
	if st == nil {
		st = styles.Active()
	}
	return &Renderer{styles: st, text: tr}
}

// Styles returns the styles the renderer draws with.
func (r *Renderer) Styles() *styles.ThemedStyles {
	return r.styles
}
