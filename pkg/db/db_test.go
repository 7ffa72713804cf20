package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cthealljr/todo/pkg/db"
)

func TestOpenSelectsBackend(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	ctx := context.Background()
	dir := t.TempDir()

	store, err := db.Open(ctx, db.TypeJSON, filepath.Join(dir, "todos.json"))
	assert.Nil(err)
	assert.IsType(&db.JSONStore{}, store)

	store, err = db.Open(ctx, db.TypeSQLite, filepath.Join(dir, "todos.sqlite"))
	assert.Nil(err)
	assert.IsType(&db.SQLiteStore{}, store)
	assert.Nil(store.Close())

	// sqlite3 is accepted as an alias
	store, err = db.Open(ctx, "sqlite3", filepath.Join(dir, "todos2.sqlite"))
	assert.Nil(err)
	assert.IsType(&db.SQLiteStore{}, store)
	assert.Nil(store.Close())
}

func TestOpenUnknownType(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	var validationErr *db.ValidationError

	store, err := db.Open(context.Background(), "pgsql", "todos.db")
	assert.Nil(store)
	assert.ErrorAs(err, &validationErr)
}

// runScenario drives a store through the same sequence of operations used
// by the parity test below.
func runScenario(assert *assert.Assertions, store db.Store) [][]string {
	ctx := context.Background()

	addSampleTodos(assert, store)
	assert.Nil(store.MarkDone(ctx, "Todo 3"))

	items, err := store.List(ctx, db.SortByDueDate, db.SortAsc)
	assert.Nil(err)

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		done := "false"
		if item.Done {
			done = "true"
		}

		rows = append(rows, []string{item.Name, item.Description, item.DueDate, done})
	}

	return rows
}

func TestBackendParity(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	ctx := context.Background()
	dir := t.TempDir()

	jsonStore, err := db.Open(ctx, db.TypeJSON, filepath.Join(dir, "todos.json"))
	assert.Nil(err)

	defer jsonStore.Close()

	sqliteStore, err := db.Open(ctx, db.TypeSQLite, filepath.Join(dir, "todos.sqlite"))
	assert.Nil(err)

	defer sqliteStore.Close()

	// the same operations against fresh stores of either type must
	// produce the same logical listing
	assert.Equal(runScenario(assert, jsonStore), runScenario(assert, sqliteStore))
}
