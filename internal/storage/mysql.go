package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"doru/internal/todo"
)

var _ Storage = (*MySQL)(nil)

// MySQL persists the todo collection in a single table, one row per todo.
// Row order is kept in an explicit position column so load/save round-trips
// preserve insertion order.
type MySQL struct {
	db *sql.DB
}

// NewMySQL opens the database at dsn and creates the todos table if needed.
func NewMySQL(dsn string) (*MySQL, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to mysql: %w", err)
	}

	s := &MySQL{db: db}
	if err := s.migrate(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MySQL) migrate(ctx context.Context) error {
	create := `CREATE TABLE IF NOT EXISTS todos (
    position INT NOT NULL,
    id BIGINT NOT NULL,
    content TEXT NOT NULL,
    status VARCHAR(20) NOT NULL,
    PRIMARY KEY (position)
)`
	if _, err := s.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create todos table: %w", err)
	}
	return nil
}

// Load reads every row in position order. An empty table is an empty
// collection. A row with an unknown status spelling is a parse error.
func (s *MySQL) Load(ctx context.Context) ([]todo.Todo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, content, status FROM todos ORDER BY position`)
	if err != nil {
		return nil, &FileError{Path: "todos", Err: err}
	}
	defer rows.Close()

	todos := []todo.Todo{}
	for rows.Next() {
		var t todo.Todo
		var status string
		if err := rows.Scan(&t.ID, &t.Content, &status); err != nil {
			return nil, &FileError{Path: "todos", Err: err}
		}
		t.Status = todo.Status(status)
		if !t.Status.Valid() {
			return nil, &ParseError{Path: "todos", Err: fmt.Errorf("unknown status %q for id %d", status, t.ID)}
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &FileError{Path: "todos", Err: err}
	}
	return todos, nil
}

// Save replaces the table contents with the given collection in one
// transaction.
func (s *MySQL) Save(ctx context.Context, todos []todo.Todo) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &FileError{Path: "todos", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM todos`); err != nil {
		return &FileError{Path: "todos", Err: err}
	}
	for i, t := range todos {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO todos (position, id, content, status) VALUES (?, ?, ?, ?)`,
			i, t.ID, t.Content, string(t.Status))
		if err != nil {
			return &FileError{Path: "todos", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &FileError{Path: "todos", Err: err}
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *MySQL) Close() error {
	return s.db.Close()
}
