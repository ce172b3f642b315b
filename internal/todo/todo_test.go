package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsOpen(t *testing.T) {
	td := New(42, "Lorem Ipsum")

	assert.Equal(t, 42, td.ID)
	assert.Equal(t, "Lorem Ipsum", td.Content)
	assert.Equal(t, StatusOpen, td.Status)
}

func TestStringRendering(t *testing.T) {
	tests := []struct {
		name string
		todo Todo
		want string
	}{
		{
			name: "open todo",
			todo: Todo{ID: 1, Content: "Buy milk", Status: StatusOpen},
			want: "[ ] Buy milk             [Open        ] (ID: 1)",
		},
		{
			name: "done todo gets a tick",
			todo: Todo{ID: 42, Content: "Learn Go", Status: StatusDone},
			want: "[x] Learn Go             [Done        ] (ID: 42)",
		},
		{
			name: "in progress",
			todo: Todo{ID: 7, Content: "Write report", Status: StatusInProgress},
			want: "[ ] Write report         [InProgress  ] (ID: 7)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.todo.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"open", StatusOpen},
		{"Open", StatusOpen},
		{"OPEN", StatusOpen},
		{"in-progress", StatusInProgress},
		{"inprogress", StatusInProgress},
		{"InProgress", StatusInProgress},
		{"done", StatusDone},
		{" done ", StatusDone},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "doing", "closed", "Done!"} {
		_, err := ParseStatus(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusOpen.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusDone.Valid())
	assert.False(t, Status("open").Valid())
	assert.False(t, Status("").Valid())
}
