// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"doru/internal/todo"
)

// FormatTodo writes the fixed-width display line for one todo.
// Format: "[<tick>] <content, 20 cols> [<status, 12 cols>] (ID: <n>)"
func FormatTodo(w io.Writer, t todo.Todo) {
	t.Content = normalizeContent(t.Content)
	fmt.Fprintln(w, t.String())
}

// FormatTodos writes one line per todo, in order.
func FormatTodos(w io.Writer, todos []todo.Todo) {
	for _, t := range todos {
		FormatTodo(w, t)
	}
}

// normalizeContent flattens newlines so a todo always renders as one line.
func normalizeContent(content string) string {
	content = strings.ReplaceAll(content, "\r", " ")
	return strings.ReplaceAll(content, "\n", " ")
}
