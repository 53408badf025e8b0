package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/kanban/internal/errors"
	"github.com/Iron-Ham/kanban/internal/task"
	"github.com/Iron-Ham/kanban/internal/testutil"
)

func newTestClient(t *testing.T, srv *testutil.TaskServer, opts ...ClientOption) *Client {
	t.Helper()
	c, err := NewClient(srv.URL, opts...)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"http://localhost:8080", false},
		{"https://tasks.example.com/api/", false},
		{"localhost:8080", true},
		{"ftp://example.com", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			_, err := NewClient(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}

	c, _ := NewClient("https://tasks.example.com/api/")
	if c.BaseURL() != "https://tasks.example.com/api" {
		t.Errorf("BaseURL() = %q, trailing slash not trimmed", c.BaseURL())
	}
}

func TestClient_List(t *testing.T) {
	t.Run("returns tasks in server order", func(t *testing.T) {
		srv := testutil.NewTaskServer(t,
			task.Task{ID: 1, Title: "A", Status: task.StatusTodo},
			task.Task{ID: 2, Title: "B", Description: "d", Status: task.StatusDone},
		)
		c := newTestClient(t, srv)

		got, err := c.List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got) != 2 || got[0].ID != 1 || got[1].Description != "d" {
			t.Errorf("List() = %+v", got)
		}
	})

	t.Run("null body is empty collection", func(t *testing.T) {
		srv := testutil.NewTaskServer(t)
		srv.ServeNullList()
		c := newTestClient(t, srv)

		got, err := c.List(context.Background())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("List() = %#v, want empty non-nil slice", got)
		}
	})

	t.Run("server error carries status text", func(t *testing.T) {
		srv := testutil.NewTaskServer(t)
		srv.Fail(http.MethodGet, http.StatusInternalServerError, "boom")
		c := newTestClient(t, srv)

		_, err := c.List(context.Background())
		if !errors.Is(err, errors.ErrUnexpectedStatus) {
			t.Fatalf("List() error = %v, want ErrUnexpectedStatus", err)
		}
		var reqErr *errors.RequestError
		if !errors.As(err, &reqErr) {
			t.Fatalf("error is not a RequestError: %T", err)
		}
		if reqErr.Op != errors.OpList || reqErr.StatusCode != 500 {
			t.Errorf("RequestError = %+v", reqErr)
		}
		if reqErr.Detail() != "Internal Server Error" {
			t.Errorf("Detail() = %q, want status text", reqErr.Detail())
		}
		if reqErr.Body != "boom" {
			t.Errorf("Body = %q, want %q", reqErr.Body, "boom")
		}
	})
}

func TestClient_Create(t *testing.T) {
	t.Run("posts without id and returns stored record", func(t *testing.T) {
		srv := testutil.NewTaskServer(t, task.Task{ID: 4, Title: "old", Status: task.StatusTodo})
		c := newTestClient(t, srv)

		in := task.New("Nova", "")
		in.ID = 99
		got, err := c.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.ID != 5 || got.Title != "Nova" || got.Status != task.StatusTodo {
			t.Errorf("Create() = %+v", got)
		}

		req, _ := srv.LastRequest()
		if req.Method != http.MethodPost || req.Path != "/tasks" {
			t.Errorf("request = %s %s", req.Method, req.Path)
		}
		var sent map[string]any
		if err := json.Unmarshal([]byte(req.Body), &sent); err != nil {
			t.Fatalf("request body is not JSON: %v", err)
		}
		if _, ok := sent["id"]; ok {
			t.Errorf("request body carries an id: %s", req.Body)
		}
		if sent["status"] != "A Fazer" {
			t.Errorf("status = %v, want A Fazer", sent["status"])
		}
	})

	t.Run("rejection carries body", func(t *testing.T) {
		srv := testutil.NewTaskServer(t)
		c := newTestClient(t, srv)

		_, err := c.Create(context.Background(), task.Task{Status: task.StatusTodo})
		var reqErr *errors.RequestError
		if !errors.As(err, &reqErr) {
			t.Fatalf("Create() error = %v, want RequestError", err)
		}
		if reqErr.StatusCode != http.StatusBadRequest {
			t.Errorf("StatusCode = %d", reqErr.StatusCode)
		}
		if reqErr.Detail() != "O campo 'titulo' é obrigatório" {
			t.Errorf("Detail() = %q", reqErr.Detail())
		}
	})
}

func TestClient_Update(t *testing.T) {
	srv := testutil.NewTaskServer(t, task.Task{ID: 1, Title: "A", Description: "x", Status: task.StatusTodo})
	c := newTestClient(t, srv)

	got, err := c.Update(context.Background(), task.Task{ID: 1, Title: "A", Description: "x", Status: task.StatusInProgress})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Status != task.StatusInProgress {
		t.Errorf("Update().Status = %q", got.Status)
	}

	req, _ := srv.LastRequest()
	if req.Method != http.MethodPut || req.Path != "/tasks/1" {
		t.Errorf("request = %s %s, want PUT /tasks/1", req.Method, req.Path)
	}
	if !strings.Contains(req.Body, `"status":"Em Progresso"`) {
		t.Errorf("request body = %s", req.Body)
	}

	t.Run("unknown id", func(t *testing.T) {
		_, err := c.Update(context.Background(), task.Task{ID: 42, Title: "A", Status: task.StatusTodo})
		var reqErr *errors.RequestError
		if !errors.As(err, &reqErr) || reqErr.StatusCode != http.StatusNotFound {
			t.Fatalf("Update() error = %v, want 404 RequestError", err)
		}
		if reqErr.Op != errors.OpEdit {
			t.Errorf("Op = %q, want edit", reqErr.Op)
		}
		if reqErr.Detail() != "Tarefa não encontrada" {
			t.Errorf("Detail() = %q", reqErr.Detail())
		}
	})
}

func TestClient_Delete(t *testing.T) {
	srv := testutil.NewTaskServer(t,
		task.Task{ID: 1, Title: "A", Status: task.StatusTodo},
		task.Task{ID: 2, Title: "B", Status: task.StatusTodo},
	)
	c := newTestClient(t, srv)

	if err := c.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if remaining := srv.Tasks(); len(remaining) != 1 || remaining[0].ID != 2 {
		t.Errorf("server tasks = %+v", remaining)
	}

	err := c.Delete(context.Background(), 1)
	if !errors.Is(err, errors.ErrUnexpectedStatus) {
		t.Errorf("second Delete() error = %v, want ErrUnexpectedStatus", err)
	}
}

func TestClient_Headers(t *testing.T) {
	srv := testutil.NewTaskServer(t)
	c := newTestClient(t, srv,
		WithUserAgent("kanban-test/1.0"),
		WithRequestIDFunc(func() string { return "req-fixed" }),
	)

	if _, err := c.List(context.Background()); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	req, _ := srv.LastRequest()
	if req.UserAgent != "kanban-test/1.0" {
		t.Errorf("User-Agent = %q", req.UserAgent)
	}
	if req.RequestID != "req-fixed" {
		t.Errorf("X-Request-ID = %q", req.RequestID)
	}
}

func TestClient_DefaultRequestIDsAreUnique(t *testing.T) {
	srv := testutil.NewTaskServer(t)
	c := newTestClient(t, srv)

	c.List(context.Background())
	c.List(context.Background())
	reqs := srv.Requests()
	if len(reqs) != 2 {
		t.Fatalf("got %d requests", len(reqs))
	}
	if reqs[0].RequestID == "" || reqs[0].RequestID == reqs[1].RequestID {
		t.Errorf("request ids = %q, %q", reqs[0].RequestID, reqs[1].RequestID)
	}
	if reqs[0].UserAgent != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want default", reqs[0].UserAgent)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(url, WithTimeout(time.Second))
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Create(context.Background(), task.New("A", ""))
	if !errors.Is(err, errors.ErrTransport) {
		t.Fatalf("Create() error = %v, want ErrTransport", err)
	}
	if errors.Is(err, errors.ErrUnexpectedStatus) {
		t.Error("transport failure should not match ErrUnexpectedStatus")
	}
	if !errors.IsRetryable(err) {
		t.Error("transport failure should be retryable")
	}
}

func TestClient_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	_, err := c.List(context.Background())
	if !errors.Is(err, errors.ErrDecode) {
		t.Fatalf("List() error = %v, want ErrDecode", err)
	}
	if errors.Is(err, errors.ErrTransport) {
		t.Error("decode failure should not match ErrTransport")
	}
}

func TestClient_CanceledContext(t *testing.T) {
	srv := testutil.NewTaskServer(t)
	c := newTestClient(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.List(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("List() error = %v, want context.Canceled in chain", err)
	}
}
