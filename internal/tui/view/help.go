package view

import (
	"strings"

	"github.com/Iron-Ham/kanban/internal/tui/keymap"
	"github.com/Iron-Ham/kanban/internal/util"
)

// HelpState holds what is needed to draw the help bar.
type HelpState struct {
	Keymap *keymap.Keymap
	Mode   keymap.Mode

	// Expanded lists every binding, one line per category
	Expanded bool

	Width int
}

// Help renders the key bindings of the current mode.
func (r *Renderer) Help(state HelpState) string {
	if state.Keymap == nil {
		return ""
	}
	entries := state.Keymap.Help(state.Mode)
	if len(entries) == 0 {
		return ""
	}

	if !state.Expanded {
		return r.styles.HelpBar.Render(r.fit(r.helpLine(entries), state.Width))
	}

	var lines []string
	for _, category := range state.Keymap.GetCategories(state.Mode) {
		var group []keymap.HelpEntry
		for _, e := range entries {
			if e.Category == category {
				group = append(group, e)
			}
		}
		if len(group) > 0 {
			lines = append(lines, r.fit(r.helpLine(group), state.Width))
		}
	}
	return r.styles.HelpBar.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) helpLine(entries []keymap.HelpEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		desc := r.text.CommandHelp(string(e.Command), e.Description)
		parts = append(parts, r.styles.HelpKey.Render(e.KeyList())+" "+r.styles.HelpDesc.Render(desc))
	}
	return strings.Join(parts, "  ")
}

func (r *Renderer) fit(line string, width int) string {
	if width <= 0 {
		return line
	}
	return util.TruncateANSI(line, width)
}
