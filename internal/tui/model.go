package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/kanban/internal/board"
	"github.com/Iron-Ham/kanban/internal/locale"
	"github.com/Iron-Ham/kanban/internal/logging"
	"github.com/Iron-Ham/kanban/internal/task"
	"github.com/Iron-Ham/kanban/internal/tui/keymap"
	"github.com/Iron-Ham/kanban/internal/tui/msg"
	"github.com/Iron-Ham/kanban/internal/tui/styles"
	"github.com/Iron-Ham/kanban/internal/tui/view"
)

// Input limits for the text fields.
const (
	titleCharLimit       = 200
	descriptionCharLimit = 2000
	descriptionRows      = 3
)

// field identifies the focused input of the form or the card editor.
type field int

const (
	fieldTitle field = iota
	fieldDescription
)

// textFields is a title input plus a description textarea.
type textFields struct {
	title       textinput.Model
	description textarea.Model
	focus       field
}

func newTextFields(tr *locale.Translator) textFields {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = titleCharLimit

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = descriptionCharLimit
	ta.SetHeight(descriptionRows)

	f := textFields{title: ti, description: ta}
	f.setPlaceholders(tr)
	return f
}

func (f *textFields) setPlaceholders(tr *locale.Translator) {
	f.title.Placeholder = tr.Text(locale.FormTitlePlaceholder)
	f.description.Placeholder = tr.Text(locale.FormDescPlaceholder)
}

func (f *textFields) setWidth(w int) {
	w = max(w, 1)
	f.title.Width = max(w-len(f.title.Prompt)-1, 1)
	f.description.SetWidth(w)
}

func (f *textFields) setValues(title, description string) {
	f.title.SetValue(title)
	f.description.SetValue(description)
}

func (f *textFields) reset() {
	f.title.Reset()
	f.description.Reset()
}

func (f *textFields) values() (string, string) {
	return f.title.Value(), f.description.Value()
}

// focusField moves the cursor to which and returns the blink command.
func (f *textFields) focusField(which field) tea.Cmd {
	f.focus = which
	if which == fieldDescription {
		f.title.Blur()
		return f.description.Focus()
	}
	f.description.Blur()
	return f.title.Focus()
}

func (f *textFields) blur() {
	f.title.Blur()
	f.description.Blur()
}

func (f *textFields) toggle() tea.Cmd {
	if f.focus == fieldTitle {
		return f.focusField(fieldDescription)
	}
	return f.focusField(fieldTitle)
}

// update forwards a key to the focused input.
func (f *textFields) update(m tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == fieldDescription {
		f.description, cmd = f.description.Update(m)
	} else {
		f.title, cmd = f.title.Update(m)
	}
	return cmd
}

// cursor locates the focused card as a column and a row within it.
type cursor struct {
	col int
	row int
}

// Model holds the TUI application state
type Model struct {
	// Core components
	ctx    context.Context
	svc    board.Service
	store  *board.Store
	logger *logging.Logger

	keymap   *keymap.Keymap
	text     *locale.Translator
	renderer *view.Renderer

	// UI state
	mode     keymap.Mode
	cursor   cursor
	width    int
	height   int
	showHelp bool
	quitting bool

	// Creation form, always visible above the board
	form textFields

	// Inline editor of the card editID
	editID task.ID
	edit   textFields

	// Card awaiting delete confirmation
	pendingDelete task.ID

	// Card whose move is in flight; the cursor follows it on success
	following task.ID

	spinner       spinner.Model
	columnWidth   int
	configChanges <-chan msg.ConfigChangedMsg
}

// Options configures a Model.
type Options struct {
	// Service performs the requests. Required.
	Service board.Service

	// Logger receives debug output. Nil disables logging.
	Logger *logging.Logger

	// Keymap overrides the default bindings
	Keymap *keymap.Keymap

	// Language selects the message catalog ("pt-BR", "en")
	Language string

	// ColumnWidth is the preferred column width
	ColumnWidth int

	// ConfigChanges delivers config file edits while the board runs
	ConfigChanges <-chan msg.ConfigChangedMsg
}

// NewModel creates a new TUI model
func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	km := opts.Keymap
	if km == nil {
		km = keymap.DefaultKeymap()
	}
	tr := locale.New(opts.Language)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:           ctx,
		svc:           opts.Service,
		store:         board.NewStore(),
		logger:        logger.WithComponent("tui"),
		keymap:        km,
		text:          tr,
		renderer:      view.NewRenderer(styles.Active(), tr),
		mode:          keymap.ModeNormal,
		form:          newTextFields(tr),
		edit:          newTextFields(tr),
		spinner:       sp,
		columnWidth:   view.ClampColumnWidth(opts.ColumnWidth),
		configChanges: opts.ConfigChanges,
	}
	m.resizeInputs()
	return m
}

// Init starts the first fetch and the loading spinner.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		msg.LoadTasks(m.ctx, m.svc),
		m.spinner.Tick,
	}
	if m.configChanges != nil {
		cmds = append(cmds, msg.WaitForConfigChange(m.configChanges))
	}
	return tea.Batch(cmds...)
}

// Store exposes the board state.
func (m Model) Store() *board.Store {
	return m.store
}

// Mode returns the current input mode.
func (m Model) Mode() keymap.Mode {
	return m.mode
}

// focusedTask returns the card under the cursor.
func (m Model) focusedTask() (task.Task, bool) {
	cols := m.store.Columns()
	if m.cursor.col < 0 || m.cursor.col >= len(cols) {
		return task.Task{}, false
	}
	col := cols[m.cursor.col]
	if m.cursor.row < 0 || m.cursor.row >= len(col) {
		return task.Task{}, false
	}
	return col[m.cursor.row], true
}

// clampCursor keeps the cursor on an existing card, or on row 0 of an
// empty column.
func (m *Model) clampCursor() {
	cols := m.store.Columns()
	m.cursor.col = min(max(m.cursor.col, 0), len(cols)-1)
	n := len(cols[m.cursor.col])
	m.cursor.row = min(max(m.cursor.row, 0), max(n-1, 0))
}

// focusTask moves the cursor onto id if it is on the board.
func (m *Model) focusTask(id task.ID) bool {
	for c, col := range m.store.Columns() {
		for r, t := range col {
			if t.ID == id {
				m.cursor = cursor{col: c, row: r}
				return true
			}
		}
	}
	return false
}
