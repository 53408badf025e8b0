package view

import (
	"strings"

	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/Iron-Ham/kanban/internal/task"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
	"github.com/Iron-Ham/kanban/internal/util"
	"github.com/charmbracelet/lipgloss"
)

// maxDescriptionLines caps the description shown on a card in display state.
const maxDescriptionLines = 3

// EditState carries the rendered inputs of a card being edited.
type EditState struct {
	// TitleView is the rendered title input
	TitleView string
	// DescriptionView is the rendered description textarea
	DescriptionView string
	// DescriptionFocused is true when the cursor is in the description
	DescriptionFocused bool
}

// CardState holds what is needed to draw one card.
type CardState struct {
	Task task.Task

	// Focused draws the focus border and the card controls
	Focused bool

	// Edit switches the card to its edit state when non-nil
	Edit *EditState

	// Width is the outer width of the card, borders included
	Width int
}

// Card renders a task card in display or edit state.
func (r *Renderer) Card(state CardState) string {
	inner := max(state.Width-cardFrame, 1)
	if state.Edit != nil {
		return r.editCard(state, inner)
	}

	st := r.styles
	var lines []string

	title := util.TruncateANSI(util.SingleLine(state.Task.Title), inner-2)
	if state.Focused {
		lines = append(lines, st.Primary.Render(styles.MarkerFocus)+" "+st.CardTitle.Render(title))
	} else {
		lines = append(lines, "  "+st.CardTitle.Render(title))
	}

	for _, line := range util.WrapLines(state.Task.Description, inner-2, maxDescriptionLines) {
		lines = append(lines, "  "+st.CardDescription.Render(line))
	}

	if state.Focused {
		lines = append(lines, "", r.moveControls(state.Task.Status, inner), r.cardActions(inner))
	}

	box := st.Card
	if state.Focused {
		box = st.CardFocused
	}
	return box.Width(state.Width - 2).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) editCard(state CardState, inner int) string {
	st := r.styles
	titleLabel, descLabel := st.FieldActive, st.FieldLabel
	if state.Edit.DescriptionFocused {
		titleLabel, descLabel = st.FieldLabel, st.FieldActive
	}

	lines := []string{
		titleLabel.Render(r.text.Text(locale.FormTitlePlaceholder)),
		state.Edit.TitleView,
		descLabel.Render(r.text.Text(locale.FormDescPlaceholder)),
		state.Edit.DescriptionView,
		"",
		util.TruncateANSI(
			st.HelpKey.Render("ctrl+s")+" "+st.CardControl.Render(r.text.Text(locale.CardSave))+"  "+
				st.HelpKey.Render("esc")+" "+st.Muted.Render(r.text.Text(locale.CardCancel)),
			inner,
		),
	}
	return st.CardEditing.Width(state.Width - 2).Render(strings.Join(lines, "\n"))
}

// moveControls renders the back and forward controls. A control that would
// leave the board is drawn disabled.
func (r *Renderer) moveControls(status task.Status, inner int) string {
	st := r.styles
	back := r.text.Text(locale.CardBack)
	forward := r.text.Text(locale.CardForward)

	backStyle, forwardStyle := st.CardControl, st.CardControl
	if _, ok := status.Prev(); !ok {
		backStyle = st.CardControlDisabled
	}
	if _, ok := status.Next(); !ok {
		forwardStyle = st.CardControlDisabled
	}

	left := backStyle.Render(back)
	right := forwardStyle.Render(forward)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return util.TruncateANSI(left+" "+right, inner)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) cardActions(inner int) string {
	st := r.styles
	line := st.HelpKey.Render("e") + " " + st.CardControl.Render(r.text.Text(locale.CardEdit)) + "  " +
		st.HelpKey.Render("d") + " " + st.Error.Render(r.text.Text(locale.CardDelete))
	return util.TruncateANSI(line, inner)
}
