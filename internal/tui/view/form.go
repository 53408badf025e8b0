package view

import (
	"strings"

	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/Iron-Ham/kanban/internal/util"
)

// FormState holds the rendered inputs of the creation form.
type FormState struct {
	TitleView       string
	DescriptionView string

	// Active is true while the form owns input
	Active bool

	// DescriptionFocused is true when the cursor is in the description
	DescriptionFocused bool

	// Width is the outer width of the form
	Width int
}

// Form renders the creation form.
func (r *Renderer) Form(state FormState) string {
	st := r.styles
	inner := max(state.Width-columnFrame, 1)

	titleLabel, descLabel := st.FieldLabel, st.FieldLabel
	if state.Active {
		titleLabel = st.FieldActive
		if state.DescriptionFocused {
			titleLabel, descLabel = st.FieldLabel, st.FieldActive
		}
	}

	submit := st.FormButton.Render(r.text.Text(locale.FormSubmit))
	if state.Active {
		submit += " " + st.HelpKey.Render("ctrl+s")
	} else {
		submit += " " + st.HelpKey.Render("n")
	}

	lines := []string{
		st.FormTitle.Render(r.text.Text(locale.FormTitle)),
		titleLabel.Render(r.text.Text(locale.FormTitlePlaceholder)),
		state.TitleView,
		descLabel.Render(r.text.Text(locale.FormDescPlaceholder)),
		state.DescriptionView,
		util.TruncateANSI(submit, inner),
	}

	box := st.Form
	if state.Active {
		box = box.BorderForeground(st.PrimaryColor)
	}
	return box.Width(max(state.Width-2, 1)).Render(strings.Join(lines, "\n"))
}
