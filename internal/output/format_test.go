package output

import (
	"bytes"
	"testing"

	"doru/internal/todo"
)

func TestFormatTodo(t *testing.T) {
	var buf bytes.Buffer
	FormatTodo(&buf, todo.Todo{ID: 42, Content: "Learn Go", Status: todo.StatusDone})

	expected := "[x] Learn Go             [Done        ] (ID: 42)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatTodoFlattensNewlines(t *testing.T) {
	var buf bytes.Buffer
	FormatTodo(&buf, todo.Todo{ID: 1, Content: "a\nb", Status: todo.StatusOpen})

	expected := "[ ] a b                  [Open        ] (ID: 1)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatTodosKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	FormatTodos(&buf, []todo.Todo{
		{ID: 2, Content: "second", Status: todo.StatusOpen},
		{ID: 1, Content: "first", Status: todo.StatusOpen},
	})

	expected := "[ ] second               [Open        ] (ID: 2)\n" +
		"[ ] first                [Open        ] (ID: 1)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
