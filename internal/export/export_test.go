package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doru/internal/todo"
)

var sample = []todo.Todo{
	{ID: 1, Content: "Write report", Status: todo.StatusInProgress},
	{ID: 2, Content: "Buy milk", Status: todo.StatusOpen},
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, "json"))

	var decoded []todo.Todo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sample, decoded)
}

func TestWriteJSONEmptyCollectionIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, "json"))
	assert.Equal(t, "[]", buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,content,status", lines[0])
	assert.Equal(t, "1,Write report,InProgress", lines[1])
	assert.Equal(t, "2,Buy milk,Open", lines[2])
}

func TestWritePDFProducesDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, "pdf"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sample, "xml")
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestWriteFormatIsCaseInsensitive(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, "CSV"))
	assert.Contains(t, buf.String(), "id,content,status")
}
