// Package errors provides centralized error definitions and error handling
// utilities for the kanban client. It defines sentinel errors, the error
// types produced when talking to the task service or validating input, and
// classification helpers used by the UI to decide what to display.
//
// # Error Types
//
// Domain-specific errors:
//   - RequestError: a call to the remote task service failed, either in
//     transport or with a non-success HTTP status
//
// Semantic errors:
//   - NotFoundError: a task is not present in the local store
//   - ValidationError: invalid input (for example an empty title)
//
// # Usage
//
//	err := errors.NewRequestError(errors.OpCreate, "POST", "/tasks").
//		WithStatus(400, "Bad Request").
//		WithBody("O campo 'titulo' é obrigatório")
//
//	if errors.Is(err, errors.ErrUnexpectedStatus) { ... }
//
//	var reqErr *errors.RequestError
//	if errors.As(err, &reqErr) {
//		fmt.Println(reqErr.Detail())
//	}
//
// # Error Classification
//
// Errors can be classified by severity and behavior:
//   - Retryable: transient errors that may succeed if the user tries again
//   - Severity: the level a failure is logged at; rejected input is a
//     warning, an unreachable or failing service an error
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Task-related sentinel errors
var (
	// ErrTitleRequired indicates a task title was empty or blank.
	ErrTitleRequired = New("title is required")
	// ErrTaskNotFound indicates that a task is not in the local store.
	ErrTaskNotFound = New("task not found")
	// ErrInvalidStatus indicates a status outside the three board columns.
	ErrInvalidStatus = New("invalid status")
)

// Service-related sentinel errors
var (
	// ErrTransport indicates the request never produced an HTTP response.
	ErrTransport = New("transport failure")
	// ErrUnexpectedStatus indicates the service answered with a non-2xx status.
	ErrUnexpectedStatus = New("unexpected status")
	// ErrDecode indicates the service answered 2xx with an unreadable body.
	ErrDecode = New("invalid response body")
)

// General sentinel errors
var (
	// ErrCanceled indicates that an operation was canceled (for example a
	// declined confirmation).
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// KanbanError is the base interface for all errors defined by this package.
type KanbanError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient.
	IsRetryable() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message   string
	cause     error
	severity  Severity
	retryable bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

func (e *baseError) Severity() Severity { return e.severity }
func (e *baseError) IsRetryable() bool  { return e.retryable }

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// Operation names the board action a request was made for. Move and Edit
// share the same HTTP call but are reported differently to the user.
type Operation string

const (
	OpList   Operation = "list"
	OpCreate Operation = "create"
	OpMove   Operation = "move"
	OpEdit   Operation = "edit"
	OpDelete Operation = "delete"
)

// RequestError represents a failed call to the remote task service.
//
// A RequestError either carries an HTTP status (the service answered with a
// non-success code) or a transport cause (no response at all).
//
// Example:
//
//	err := errors.NewRequestError(errors.OpDelete, "DELETE", "/tasks/7").
//		WithStatus(404, "Not Found").
//		WithBody("Tarefa não encontrada")
//	fmt.Println(err) // "request error [op=delete, DELETE /tasks/7, status=404]: Tarefa não encontrada"
type RequestError struct {
	baseError
	Op         Operation
	Method     string
	Path       string
	StatusCode int
	Status     string
	Body       string
	RequestID  string
}

// NewRequestError creates a RequestError for op against method and path.
func NewRequestError(op Operation, method, path string) *RequestError {
	return &RequestError{
		baseError: baseError{
			message:  "request failed",
			severity: SeverityError,
		},
		Op:     op,
		Method: method,
		Path:   path,
	}
}

// WithStatus records the HTTP status the service answered with. When status
// text is empty the canonical text for code is used. Answers below 500 are
// the service rejecting the request and only warrant a warning.
func (e *RequestError) WithStatus(code int, status string) *RequestError {
	e.StatusCode = code
	if status == "" {
		status = http.StatusText(code)
	}
	e.Status = status
	e.retryable = code >= 500 || code == http.StatusTooManyRequests
	if code < 500 {
		e.severity = SeverityWarning
	}
	return e
}

// WithBody records the response body text.
func (e *RequestError) WithBody(body string) *RequestError {
	e.Body = strings.TrimSpace(body)
	return e
}

// WithCause records the transport or decoding failure.
func (e *RequestError) WithCause(cause error) *RequestError {
	e.cause = cause
	if e.StatusCode == 0 {
		e.retryable = true
	}
	return e
}

// WithRequestID records the correlation id sent with the request.
func (e *RequestError) WithRequestID(id string) *RequestError {
	e.RequestID = id
	return e
}

// WithOp returns a copy of e attributed to a different board operation.
func (e *RequestError) WithOp(op Operation) *RequestError {
	cp := *e
	cp.Op = op
	return &cp
}

// Detail returns the text that describes what went wrong: the status text
// for list failures, the response body for every other operation (falling
// back to the status text when the body is empty), or the transport cause.
func (e *RequestError) Detail() string {
	if e.StatusCode == 0 {
		if e.cause != nil {
			return e.cause.Error()
		}
		return e.message
	}
	if e.Op == OpList || e.Body == "" {
		return e.Status
	}
	return e.Body
}

// Error returns the formatted error message.
func (e *RequestError) Error() string {
	parts := []string{fmt.Sprintf("op=%s", e.Op)}
	if e.Method != "" {
		parts = append(parts, fmt.Sprintf("%s %s", e.Method, e.Path))
	}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}
	if e.RequestID != "" {
		parts = append(parts, fmt.Sprintf("request_id=%s", e.RequestID))
	}
	return fmt.Sprintf("request error [%s]: %s", strings.Join(parts, ", "), e.Detail())
}

// Is checks if this error matches the target.
func (e *RequestError) Is(target error) bool {
	if _, ok := target.(*RequestError); ok {
		return true
	}
	if e.StatusCode != 0 && target == ErrUnexpectedStatus {
		return true
	}
	if e.StatusCode == 0 && e.cause != nil && !errors.Is(e.cause, ErrDecode) && target == ErrTransport {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("task", "42")
//	fmt.Println(err) // "task '42' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:  fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity: SeverityWarning,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if target == ErrTaskNotFound && e.ResourceType == "task" {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("title is required").WithField("title")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:  message,
			severity: SeverityWarning,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition:
// a transport failure, a 5xx or a 429 answer. The client never retries on
// its own; this only drives the hint shown next to the message.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var kerr KanbanError
	if As(err, &kerr) {
		return kerr.IsRetryable()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement KanbanError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var kerr KanbanError
	if As(err, &kerr) {
		return kerr.Severity()
	}
	return SeverityError
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
