package view

import (
	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/Iron-Ham/kanban/internal/util"
)

// Banner renders the error slot. It returns "" when err is nil.
//
// Transient failures get a hint to reload; every banner names the key that
// dismisses it.
func (r *Renderer) Banner(err error, width int) string {
	if err == nil {
		return ""
	}
	st := r.styles

	msg := st.Banner.Render(r.text.ErrorMessage(err))
	hint := st.HelpKey.Render("esc") + " " + st.BannerHint.Render(r.text.Text(locale.ErrorDismiss))
	if errors.IsRetryable(err) {
		hint = st.BannerHint.Render(r.text.Text(locale.RetryHint)) + "  " + hint
	}

	line := msg + "  " + hint
	if width > 0 {
		line = util.TruncateANSI(line, width)
	}
	return line
}
