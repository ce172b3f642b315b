package todo

// Manager is the sole owner of a todo collection and its id counter for the
// duration of one invocation. All queries and mutations go through it; it has
// no persistence behavior of its own.
//
// Ids are strictly increasing across successive Adds and are never reused,
// even after a Delete. Insertion order of the collection is preserved.
type Manager struct {
	counter int
	todos   []Todo
}

// NewManager creates a Manager that adopts existing verbatim. The counter is
// initialized to the maximum id present, so the next Add never collides with
// an adopted todo. Duplicate ids in existing are not validated; the by-id
// operations then address the first occurrence.
func NewManager(existing []Todo) *Manager {
	counter := 0
	for _, t := range existing {
		if t.ID > counter {
			counter = t.ID
		}
	}
	todos := make([]Todo, len(existing))
	copy(todos, existing)
	return &Manager{
		counter: counter,
		todos:   todos,
	}
}

// NewEmptyManager creates a Manager with no todos and counter 0.
func NewEmptyManager() *Manager {
	return NewManager(nil)
}

// Add creates a new todo with the given content and the next id, appends it,
// and returns the new id.
func (m *Manager) Add(content string) int {
	m.counter++
	m.todos = append(m.todos, New(m.counter, content))
	return m.counter
}

// All returns a copy of every todo in insertion order.
// Callers get copies so the manager's state can only change through mutations.
func (m *Manager) All() []Todo {
	out := make([]Todo, len(m.todos))
	copy(out, m.todos)
	return out
}

// ByID returns the first todo with the given id, or false if none exists.
func (m *Manager) ByID(id int) (Todo, bool) {
	if i := m.indexOf(id); i >= 0 {
		return m.todos[i], true
	}
	return Todo{}, false
}

// ByStatus returns copies of every todo with the given status, in order.
func (m *Manager) ByStatus(status Status) []Todo {
	out := []Todo{}
	for _, t := range m.todos {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// EditContent replaces the content of the todo with the given id.
func (m *Manager) EditContent(id int, content string) error {
	i := m.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	m.todos[i].Content = content
	return nil
}

// ChangeStatus replaces the status of the todo with the given id. Statuses
// transition freely; Done can go back to Open.
func (m *Manager) ChangeStatus(id int, status Status) error {
	i := m.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	m.todos[i].Status = status
	return nil
}

// Delete removes the todo with the given id, preserving the relative order of
// the rest.
func (m *Manager) Delete(id int) error {
	i := m.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	m.todos = append(m.todos[:i], m.todos[i+1:]...)
	return nil
}

// indexOf is a linear scan for the first todo with the given id, -1 if none.
func (m *Manager) indexOf(id int) int {
	for i, t := range m.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
