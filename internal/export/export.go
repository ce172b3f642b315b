// Package export serializes the todo collection into report formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"doru/internal/todo"
)

// Formats lists the supported export formats.
var Formats = []string{"json", "csv", "pdf"}

// Write serializes todos to w in the given format.
func Write(w io.Writer, todos []todo.Todo, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return writeJSON(w, todos)
	case "csv":
		return writeCSV(w, todos)
	case "pdf":
		return writePDF(w, todos)
	default:
		return fmt.Errorf("unknown format %s", format)
	}
}

func writeJSON(w io.Writer, todos []todo.Todo) error {
	if todos == nil {
		todos = []todo.Todo{}
	}
	data, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeCSV(w io.Writer, todos []todo.Todo) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "content", "status"}); err != nil {
		return err
	}
	for _, t := range todos {
		if err := cw.Write([]string{strconv.Itoa(t.ID), t.Content, string(t.Status)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePDF(w io.Writer, todos []todo.Todo) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Todo List")
	pdf.Ln(12)
	pdf.SetFont("Courier", "", 10)
	for _, t := range todos {
		pdf.MultiCell(0, 6, t.String(), "0", "L", false)
	}
	return pdf.Output(w)
}
