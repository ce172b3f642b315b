package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReturnsStrictlyIncreasingIDs(t *testing.T) {
	m := NewEmptyManager()

	assert.Equal(t, 1, m.Add("Lorem"))
	assert.Equal(t, 2, m.Add("Ipsum"))
	assert.Equal(t, 3, m.Add("Dolor"))
	assert.Len(t, m.All(), 3)
}

func TestAddAfterDeleteNeverReusesIDs(t *testing.T) {
	m := NewEmptyManager()
	m.Add("Lorem")
	id := m.Add("Ipsum")

	require.NoError(t, m.Delete(id))

	assert.Equal(t, 3, m.Add("Dolor"))
}

func TestNewManagerAdoptsExistingAndCounterIsMaxID(t *testing.T) {
	existing := []Todo{
		{ID: 0, Content: "Zero", Status: StatusOpen},
		{ID: 10, Content: "Ten", Status: StatusDone},
		{ID: 2, Content: "Two", Status: StatusOpen},
	}

	m := NewManager(existing)

	assert.Equal(t, existing, m.All())
	assert.Equal(t, 11, m.Add("Eleven"))
}

func TestNewManagerEmptySequence(t *testing.T) {
	m := NewManager(nil)
	assert.Empty(t, m.All())
	assert.Equal(t, 1, m.Add("First"))
}

func TestByID(t *testing.T) {
	m := NewEmptyManager()
	m.Add("This has id 1")
	m.Add("This has id 2")
	id := m.Add("This has id 3")

	got, ok := m.ByID(id)
	require.True(t, ok)
	assert.Equal(t, Todo{ID: 3, Content: "This has id 3", Status: StatusOpen}, got)
}

func TestByIDAbsent(t *testing.T) {
	m := NewEmptyManager()

	_, ok := m.ByID(42)
	assert.False(t, ok)
}

func TestByStatusFiltersInOrder(t *testing.T) {
	m := NewEmptyManager()
	m.Add("Lorem")
	m.Add("Ipsum")
	id := m.Add("Dolor")

	require.NoError(t, m.ChangeStatus(id, StatusInProgress))

	open := m.ByStatus(StatusOpen)
	require.Len(t, open, 2)
	assert.Equal(t, Todo{ID: 1, Content: "Lorem", Status: StatusOpen}, open[0])
	assert.Equal(t, Todo{ID: 2, Content: "Ipsum", Status: StatusOpen}, open[1])

	inProgress := m.ByStatus(StatusInProgress)
	require.Len(t, inProgress, 1)
	assert.Equal(t, id, inProgress[0].ID)
}

func TestEditContent(t *testing.T) {
	m := NewEmptyManager()
	id := m.Add("Learn Rust")

	require.NoError(t, m.EditContent(id, "Learn Go"))

	got, ok := m.ByID(id)
	require.True(t, ok)
	assert.Equal(t, "Learn Go", got.Content)
}

func TestEditContentNotFoundLeavesSequenceUnchanged(t *testing.T) {
	m := NewEmptyManager()
	m.Add("Lorem")
	before := m.All()

	err := m.EditContent(99, "nope")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 99, nf.ID)
	assert.Equal(t, before, m.All())
}

func TestChangeStatusFreelyTransitions(t *testing.T) {
	m := NewEmptyManager()
	id := m.Add("Lorem")

	require.NoError(t, m.ChangeStatus(id, StatusDone))
	require.NoError(t, m.ChangeStatus(id, StatusOpen))

	got, _ := m.ByID(id)
	assert.Equal(t, StatusOpen, got.Status)
}

func TestChangeStatusNotFound(t *testing.T) {
	m := NewEmptyManager()

	err := m.ChangeStatus(5, StatusDone)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, 5, nf.ID)
}

func TestDeleteRemovesExactlyOnePreservingOrder(t *testing.T) {
	m := NewEmptyManager()
	m.Add("Lorem")
	id := m.Add("Ipsum")
	m.Add("Dolor")

	require.NoError(t, m.Delete(id))

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Lorem", all[0].Content)
	assert.Equal(t, "Dolor", all[1].Content)
}

func TestDeleteNotFoundLeavesLengthUnchanged(t *testing.T) {
	m := NewEmptyManager()
	m.Add("Lorem")

	err := m.Delete(42)

	assert.True(t, IsNotFound(err))
	assert.Len(t, m.All(), 1)
}

// Adopting a sequence with duplicate ids is undefined input, but every by-id
// operation must apply the same first-match policy.
func TestDuplicateIDsAddressFirstMatchConsistently(t *testing.T) {
	m := NewManager([]Todo{
		{ID: 1, Content: "first", Status: StatusOpen},
		{ID: 1, Content: "second", Status: StatusOpen},
	})

	got, ok := m.ByID(1)
	require.True(t, ok)
	assert.Equal(t, "first", got.Content)

	require.NoError(t, m.EditContent(1, "edited"))
	all := m.All()
	assert.Equal(t, "edited", all[0].Content)
	assert.Equal(t, "second", all[1].Content)

	require.NoError(t, m.ChangeStatus(1, StatusDone))
	all = m.All()
	assert.Equal(t, StatusDone, all[0].Status)
	assert.Equal(t, StatusOpen, all[1].Status)

	require.NoError(t, m.Delete(1))
	all = m.All()
	require.Len(t, all, 1)
	assert.Equal(t, "second", all[0].Content)
}

func TestEndToEndScenario(t *testing.T) {
	m := NewEmptyManager()

	require.Equal(t, 1, m.Add("Write report"))
	require.Equal(t, 2, m.Add("Buy milk"))

	require.NoError(t, m.ChangeStatus(1, StatusInProgress))

	open := m.ByStatus(StatusOpen)
	require.Len(t, open, 1)
	assert.Equal(t, Todo{ID: 2, Content: "Buy milk", Status: StatusOpen}, open[0])

	require.NoError(t, m.Delete(1))

	_, ok := m.ByID(1)
	assert.False(t, ok)
}
