package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	// use the sqlite db driver.
	_ "github.com/mattn/go-sqlite3"
)

//go:embed base.sql
var baseSQL string

// sortColumns whitelists ORDER BY columns. Sort keys arrive from user
// input and are never interpolated without passing through here.
var sortColumns = map[string]string{
	SortByName:        "name",
	SortByDescription: "description",
	SortByDone:        "done",
	SortByDueDate:     "due_date",
}

// SQLiteStore keeps the collection in a single todo table.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore connects to the sqlite database at path, creating the
// file and the todo table if either does not exist. Initialization is
// idempotent.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("open sqlite db at %s", path), Err: err}
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()

		return nil, &StorageError{Op: fmt.Sprintf("connect to sqlite db at %s", path), Err: err}
	}

	// wait briefly on a locked database instead of failing outright
	if _, err := conn.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()

		return nil, &StorageError{Op: "set busy_timeout", Err: err}
	}

	// run idempotent setup sql to create an empty table if it doesn't exist
	if _, err := conn.ExecContext(ctx, baseSQL); err != nil {
		conn.Close()

		return nil, &StorageError{Op: "run base sql", Err: err}
	}

	return &SQLiteStore{conn: conn}, nil
}

// Add implements Store.
func (s *SQLiteStore) Add(ctx context.Context, todo *Todo) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO todo (name, description, done, due_date) VALUES (?, ?, ?, ?)`,
		todo.Name, todo.Description, todo.Done, todo.DueDate,
	)
	if err != nil {
		return &StorageError{Op: fmt.Sprintf("add todo %s", todo.Name), Err: err}
	}

	return nil
}

// List implements Store. Ordering is pushed into the query: an empty
// due_date sorts last in either direction and a trailing rowid term keeps
// ties in insertion order.
func (s *SQLiteStore) List(ctx context.Context, sortBy, sortOrder string) ([]*Todo, error) {
	orderBy, err := orderClause(sortBy, sortOrder)
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryContext(ctx,
		`SELECT name, description, done, due_date FROM todo `+orderBy)
	if err != nil {
		return nil, &StorageError{Op: "list todos", Err: err}
	}
	defer rows.Close()

	items := []*Todo{}

	for rows.Next() {
		var todo Todo

		if err := rows.Scan(&todo.Name, &todo.Description, &todo.Done, &todo.DueDate); err != nil {
			return nil, &StorageError{Op: "scan todo row", Err: err}
		}

		items = append(items, &todo)
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "scan todos", Err: err}
	}

	return items, nil
}

func orderClause(sortBy, sortOrder string) (string, error) {
	if sortBy == "" {
		return "ORDER BY rowid", nil
	}

	if err := validateSort(sortBy, sortOrder); err != nil {
		return "", err
	}

	col := sortColumns[sortBy]

	dir := "ASC"
	if sortOrder == SortDesc {
		dir = "DESC"
	}

	if sortBy == SortByDueDate {
		return fmt.Sprintf("ORDER BY (due_date = '') ASC, due_date %s, rowid", dir), nil
	}

	return fmt.Sprintf("ORDER BY %s %s, rowid", col, dir), nil
}

// MarkDone implements Store. If several rows share a name, only the one
// with the lowest rowid is updated.
func (s *SQLiteStore) MarkDone(ctx context.Context, name string) error {
	res, err := s.conn.ExecContext(ctx,
		`UPDATE todo SET done = 1 WHERE rowid = (SELECT min(rowid) FROM todo WHERE name = ?)`,
		name,
	)
	if err != nil {
		return &StorageError{Op: fmt.Sprintf("mark todo %s done", name), Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &StorageError{Op: fmt.Sprintf("mark todo %s done", name), Err: err}
	}

	if affected == 0 {
		return &NotFoundError{Name: name}
	}

	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
