package task

import (
	"encoding/json"
	"testing"

	"github.com/Iron-Ham/kanban/internal/errors"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		status   Status
		next     Status
		hasNext  bool
		prev     Status
		hasPrev  bool
		position int
	}{
		{StatusTodo, StatusInProgress, true, StatusTodo, false, 0},
		{StatusInProgress, StatusDone, true, StatusTodo, true, 1},
		{StatusDone, StatusDone, false, StatusInProgress, true, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			next, ok := tt.status.Next()
			if next != tt.next || ok != tt.hasNext {
				t.Errorf("Next() = (%q, %v), want (%q, %v)", next, ok, tt.next, tt.hasNext)
			}
			prev, ok := tt.status.Prev()
			if prev != tt.prev || ok != tt.hasPrev {
				t.Errorf("Prev() = (%q, %v), want (%q, %v)", prev, ok, tt.prev, tt.hasPrev)
			}
			if got := tt.status.Index(); got != tt.position {
				t.Errorf("Index() = %d, want %d", got, tt.position)
			}
		})
	}
}

func TestStatus_UnknownValue(t *testing.T) {
	s := Status("Arquivada")
	if s.Valid() {
		t.Error("unknown status reported as valid")
	}
	if _, ok := s.Next(); ok {
		t.Error("unknown status should have no next step")
	}
	if _, ok := s.Prev(); ok {
		t.Error("unknown status should have no previous step")
	}
	if s.Index() != -1 {
		t.Errorf("Index() = %d, want -1", s.Index())
	}
}

func TestStatus_CanMoveTo(t *testing.T) {
	if !StatusTodo.CanMoveTo(StatusInProgress) {
		t.Error("To Do -> In Progress should be allowed")
	}
	if StatusTodo.CanMoveTo(StatusDone) {
		t.Error("To Do -> Done skips a column and should be rejected")
	}
	if !StatusDone.CanMoveTo(StatusInProgress) {
		t.Error("Done -> In Progress should be allowed")
	}
	if StatusInProgress.CanMoveTo(StatusInProgress) {
		t.Error("moving to the same column is not a step")
	}
}

func TestNew(t *testing.T) {
	task := New("Escrever testes", "cobrir o store")
	if task.ID != 0 {
		t.Errorf("ID = %d, want 0", task.ID)
	}
	if task.Status != StatusTodo {
		t.Errorf("Status = %q, want %q", task.Status, StatusTodo)
	}
}

func TestWithHelpersDoNotMutate(t *testing.T) {
	orig := Task{ID: 1, Title: "A", Description: "d", Status: StatusTodo}

	moved := orig.WithStatus(StatusInProgress)
	edited := orig.WithContent("B", "")

	if orig.Status != StatusTodo || orig.Title != "A" {
		t.Errorf("original modified: %+v", orig)
	}
	if moved.Status != StatusInProgress || moved.Title != "A" || moved.Description != "d" || moved.ID != 1 {
		t.Errorf("WithStatus() = %+v", moved)
	}
	if edited.Title != "B" || edited.Description != "" || edited.Status != StatusTodo || edited.ID != 1 {
		t.Errorf("WithContent() = %+v", edited)
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		title   string
		wantErr bool
	}{
		{"A", false},
		{"  padded  ", false},
		{"", true},
		{"   ", true},
		{"\n\t", true},
	}

	for _, tt := range tests {
		err := ValidateTitle(tt.title)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrTitleRequired) {
			t.Errorf("ValidateTitle(%q) error does not match ErrTitleRequired", tt.title)
		}
	}
}

func TestTaskJSON(t *testing.T) {
	t.Run("create payload omits id and empty description", func(t *testing.T) {
		data, err := json.Marshal(New("A", ""))
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		want := `{"titulo":"A","status":"A Fazer"}`
		if string(data) != want {
			t.Errorf("Marshal() = %s, want %s", data, want)
		}
	})

	t.Run("decodes server record", func(t *testing.T) {
		var got Task
		raw := `{"id":3,"titulo":"B","descricao":"x","status":"Concluídas"}`
		if err := json.Unmarshal([]byte(raw), &got); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		want := Task{ID: 3, Title: "B", Description: "x", Status: StatusDone}
		if got != want {
			t.Errorf("Unmarshal() = %+v, want %+v", got, want)
		}
	})
}
