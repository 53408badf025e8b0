// Package locale holds the user-visible strings of the board in every
// supported language and turns domain errors into the single message shown
// in the error banner.
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/task"
)

// Message keys. Values are looked up in the catalog for the active language.
const (
	AppTitle               = "app.title"
	Loading                = "app.loading"
	HeaderCount            = "app.count"
	ColumnEmpty            = "column.empty"
	FormTitle              = "form.title"
	FormTitlePlaceholder   = "form.title_placeholder"
	FormDescPlaceholder    = "form.description_placeholder"
	FormSubmit             = "form.submit"
	CardEdit               = "card.edit"
	CardDelete             = "card.delete"
	CardSave               = "card.save"
	CardCancel             = "card.cancel"
	CardBack               = "card.back"
	CardForward            = "card.forward"
	ConfirmDelete          = "confirm.delete"
	ConfirmYes             = "confirm.yes"
	ConfirmNo              = "confirm.no"
	ErrorDismiss           = "error.dismiss"
	TitleRequired          = "error.title_required"
	InvalidStatus          = "error.invalid_status"
	InvalidInput           = "error.invalid_input"
	TaskNotFound           = "error.task_not_found"
	ListFailed             = "error.list_failed"
	CreateFailed           = "error.create_failed"
	MoveFailed             = "error.move_failed"
	EditFailed             = "error.edit_failed"
	DeleteFailed           = "error.delete_failed"
	HelpTitle              = "help.title"
	RetryHint              = "error.retry_hint"
	StatusTodoLabel        = "status.todo"
	StatusInProgressLabel  = "status.in_progress"
	StatusDoneLabel        = "status.done"
	CLITaskCreated         = "cli.created"
	CLITaskUpdated         = "cli.updated"
	CLITaskDeleted         = "cli.deleted"
	CLIDeleteDeclined      = "cli.delete_declined"
	CLINoTasks             = "cli.no_tasks"
	CLIConfirmPromptSuffix = "cli.confirm_suffix"
)

// Supported languages. The first entry is the fallback.
var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
}

var matcher = language.NewMatcher(supported)

var cat = buildCatalog()

var entries = map[string][2]string{
	AppTitle:               {"Kanban", "Kanban"},
	Loading:                {"Carregando...", "Loading..."},
	HeaderCount:            {"%d tarefas", "%d tasks"},
	ColumnEmpty:            {"Nenhuma tarefa aqui.", "No tasks here."},
	FormTitle:              {"Adicionar Nova Tarefa", "Add New Task"},
	FormTitlePlaceholder:   {"Título da Tarefa", "Task title"},
	FormDescPlaceholder:    {"Descrição (Opcional)", "Description (optional)"},
	FormSubmit:             {"Adicionar Tarefa", "Add Task"},
	CardEdit:               {"Editar", "Edit"},
	CardDelete:             {"Excluir", "Delete"},
	CardSave:               {"Salvar", "Save"},
	CardCancel:             {"Cancelar", "Cancel"},
	CardBack:               {"← Voltar", "← Back"},
	CardForward:            {"Mover →", "Move →"},
	ConfirmDelete:          {"Tem certeza que deseja excluir esta tarefa?", "Are you sure you want to delete this task?"},
	ConfirmYes:             {"sim", "yes"},
	ConfirmNo:              {"não", "no"},
	ErrorDismiss:           {"fechar", "dismiss"},
	TitleRequired:          {"O título é obrigatório!", "Title is required!"},
	InvalidStatus:          {"Status inválido: %v", "Invalid status: %v"},
	InvalidInput:           {"Entrada inválida: %v", "Invalid input: %v"},
	TaskNotFound:           {"Tarefa %s não encontrada", "Task %s not found"},
	ListFailed:             {"Falha na rede: %s", "Network failure: %s"},
	CreateFailed:           {"Falha ao criar tarefa: %s", "Failed to create task: %s"},
	MoveFailed:             {"Falha ao mover tarefa: %s", "Failed to move task: %s"},
	EditFailed:             {"Falha ao editar tarefa: %s", "Failed to edit task: %s"},
	DeleteFailed:           {"Falha ao excluir tarefa: %s", "Failed to delete task: %s"},
	HelpTitle:              {"Atalhos", "Shortcuts"},
	RetryHint:              {"pressione r para recarregar", "press r to reload"},
	StatusTodoLabel:        {"A Fazer", "To Do"},
	StatusInProgressLabel:  {"Em Progresso", "In Progress"},
	StatusDoneLabel:        {"Concluídas", "Done"},
	CLITaskCreated:         {"Tarefa %d criada", "Created task %d"},
	CLITaskUpdated:         {"Tarefa %d atualizada", "Updated task %d"},
	CLITaskDeleted:         {"Tarefa %d excluída", "Deleted task %d"},
	CLIDeleteDeclined:      {"Exclusão cancelada", "Delete canceled"},
	CLINoTasks:             {"Nenhuma tarefa.", "No tasks."},
	CLIConfirmPromptSuffix: {"[s/N]", "[y/N]"},
}

// commandHelp holds the help bar text of each key binding command, keyed by
// the command name.
var commandHelp = map[string][2]string{
	"prev_column":   {"coluna anterior", "previous column"},
	"next_column":   {"próxima coluna", "next column"},
	"prev_card":     {"cartão anterior", "previous card"},
	"next_card":     {"próximo cartão", "next card"},
	"first_card":    {"primeiro cartão", "first card"},
	"last_card":     {"último cartão", "last card"},
	"move_back":     {"voltar", "move back"},
	"move_forward":  {"mover", "move forward"},
	"edit_card":     {"editar", "edit"},
	"delete_card":   {"excluir", "delete"},
	"new_task":      {"nova tarefa", "new task"},
	"reload":        {"recarregar", "reload"},
	"dismiss_error": {"fechar erro", "dismiss error"},
	"toggle_help":   {"ajuda", "help"},
	"quit":          {"sair", "quit"},
	"next_field":    {"próximo campo", "next field"},
	"prev_field":    {"campo anterior", "previous field"},
	"submit":        {"salvar", "save"},
	"cancel":        {"cancelar", "cancel"},
	"confirm_yes":   {"excluir", "delete"},
	"confirm_no":    {"manter", "keep"},
}

const commandHelpPrefix = "cmd."

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(supported[0]))
	add := func(key string, texts [2]string) {
		for i, tag := range supported {
			// SetString only fails for malformed messages, which the
			// literals above are not.
			_ = b.SetString(tag, key, texts[i])
		}
	}
	for key, texts := range entries {
		add(key, texts)
	}
	for cmd, texts := range commandHelp {
		add(commandHelpPrefix+cmd, texts)
	}
	return b
}

// Match resolves a configured language name to a supported tag, falling
// back to Brazilian Portuguese.
func Match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return supported[0]
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

// Translator renders catalog messages for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for lang ("pt-BR", "en", ...).
func New(lang string) *Translator {
	tag := Match(lang)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Tag returns the resolved language.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Text returns the message for key, formatted with args.
func (t *Translator) Text(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// CommandHelp returns the help text for a key binding command, or fallback
// when the command has no translation.
func (t *Translator) CommandHelp(command, fallback string) string {
	if _, ok := commandHelp[command]; !ok {
		return fallback
	}
	return t.Text(commandHelpPrefix + command)
}

// StatusLabel returns the column heading for s. Unknown statuses are shown
// as their raw value.
func (t *Translator) StatusLabel(s task.Status) string {
	switch s {
	case task.StatusTodo:
		return t.Text(StatusTodoLabel)
	case task.StatusInProgress:
		return t.Text(StatusInProgressLabel)
	case task.StatusDone:
		return t.Text(StatusDoneLabel)
	}
	return string(s)
}

// ErrorMessage collapses err into the single line shown to the user.
//
// Request failures are prefixed with the operation that failed and carry the
// service's status text (list) or response body (everything else). A missing
// title, a missing task and rejected input map to their own messages showing
// the offending value. Anything else is shown as is.
func (t *Translator) ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, errors.ErrTitleRequired) {
		return t.Text(TitleRequired)
	}

	var reqErr *errors.RequestError
	if errors.As(err, &reqErr) {
		return t.Text(operationKey(reqErr.Op), reqErr.Detail())
	}

	var notFound *errors.NotFoundError
	if errors.As(err, &notFound) && errors.Is(err, errors.ErrTaskNotFound) {
		return t.Text(TaskNotFound, notFound.ResourceID)
	}

	var valErr *errors.ValidationError
	if errors.As(err, &valErr) {
		value := valErr.Value
		if value == nil {
			value = valErr.Field
		}
		if errors.Is(err, errors.ErrInvalidStatus) {
			return t.Text(InvalidStatus, value)
		}
		return t.Text(InvalidInput, value)
	}
	return err.Error()
}

func operationKey(op errors.Operation) string {
	switch op {
	case errors.OpList:
		return ListFailed
	case errors.OpCreate:
		return CreateFailed
	case errors.OpMove:
		return MoveFailed
	case errors.OpEdit:
		return EditFailed
	case errors.OpDelete:
		return DeleteFailed
	}
	return ListFailed
}
