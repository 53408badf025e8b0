// Package testutil provides testing utilities for kanban tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Iron-Ham/kanban/internal/task"
)

// Request is one call received by a TaskServer.
type Request struct {
	Method    string
	Path      string
	Body      string
	RequestID string
	UserAgent string
}

// Failure is a scripted non-success answer.
type Failure struct {
	Status int
	Body   string
}

// TaskServer is an in-process task service speaking the same REST dialect
// as the real backend. It records every request and can be told to fail.
type TaskServer struct {
	*httptest.Server

	mu       sync.Mutex
	tasks    []task.Task
	nextID   task.ID
	requests []Request
	failures map[string]Failure
	nullList bool
}

// NewTaskServer starts a server seeded with tasks. Seed tasks keep their
// ids; new ids continue after the largest one. The server is closed when
// the test ends.
func NewTaskServer(t *testing.T, seed ...task.Task) *TaskServer {
	t.Helper()

	s := &TaskServer{
		tasks:    append([]task.Task(nil), seed...),
		nextID:   1,
		failures: make(map[string]Failure),
	}
	for _, tk := range seed {
		if tk.ID >= s.nextID {
			s.nextID = tk.ID + 1
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Get("/tasks", s.handleList)
	r.Post("/tasks", s.handleCreate)
	r.Put("/tasks/{id}", s.handleUpdate)
	r.Delete("/tasks/{id}", s.handleDelete)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Fail makes every subsequent request with method answer status and body.
func (s *TaskServer) Fail(method string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = Failure{Status: status, Body: body}
}

// Recover removes every scripted failure.
func (s *TaskServer) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]Failure)
}

// ServeNullList makes an empty collection encode as JSON null.
func (s *TaskServer) ServeNullList() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nullList = true
	if len(s.tasks) == 0 {
		s.tasks = nil
	}
}

// Requests returns a copy of every request received so far.
func (s *TaskServer) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request and false if there was none.
func (s *TaskServer) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Tasks returns a copy of the server-side collection.
func (s *TaskServer) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]task.Task(nil), s.tasks...)
}

func (s *TaskServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      string(body),
			RequestID: r.Header.Get("X-Request-ID"),
			UserAgent: r.Header.Get("User-Agent"),
		})
		failure, failing := s.failures[r.Method]
		s.mu.Unlock()

		if failing {
			http.Error(w, failure.Body, failure.Status)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (s *TaskServer) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out any = s.tasks
	if s.tasks == nil && !s.nullList {
		out = []task.Task{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *TaskServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var tk task.Task
	if err := json.NewDecoder(r.Body).Decode(&tk); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if tk.Title == "" {
		http.Error(w, "O campo 'titulo' é obrigatório", http.StatusBadRequest)
		return
	}
	if tk.Status == "" {
		tk.Status = task.StatusTodo
	}
	if !tk.Status.Valid() {
		http.Error(w, "Status inválido", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tk.ID = s.nextID
	s.nextID++
	s.tasks = append(s.tasks, tk)
	writeJSON(w, http.StatusCreated, tk)
}

func (s *TaskServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var updated task.Task
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if updated.Title == "" {
		http.Error(w, "O campo 'titulo' é obrigatório", http.StatusBadRequest)
		return
	}
	if !updated.Status.Valid() {
		http.Error(w, "Status inválido", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Title = updated.Title
			s.tasks[i].Description = updated.Description
			s.tasks[i].Status = updated.Status
			writeJSON(w, http.StatusOK, s.tasks[i])
			return
		}
	}
	http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
}

func (s *TaskServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
}

func parseID(w http.ResponseWriter, r *http.Request) (task.ID, bool) {
	n, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return 0, false
	}
	return task.ID(n), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
