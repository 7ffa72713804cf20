package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cthealljr/todo/pkg/db"
)

func sqliteStorePath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "todos.sqlite")
}

func getSQLiteStore(t *testing.T, assert *assert.Assertions) *db.SQLiteStore {
	t.Helper()

	store, err := db.NewSQLiteStore(context.Background(), sqliteStorePath(t))
	assert.NotNil(store)
	assert.Nil(err)

	return store
}

func TestNewSQLiteStoreBadFile(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store, err := db.NewSQLiteStore(context.Background(), "/alwfkjasfd/asdflkjdsal.sqlite")
	assert.Nil(store)
	assert.NotNil(err)
}

func TestNewSQLiteStoreIdempotent(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	path := sqliteStorePath(t)
	ctx := context.Background()

	store, err := db.NewSQLiteStore(ctx, path)
	assert.Nil(err)
	assert.Nil(store.Add(ctx, &db.Todo{Name: "water plants"}))
	assert.Nil(store.Close())

	// reopening must not recreate the table or lose data
	store2, err := db.NewSQLiteStore(ctx, path)
	assert.Nil(err)

	defer store2.Close()

	items, err := store2.List(ctx, "", "")
	assert.Nil(err)
	assert.Len(items, 1)
	assert.Equal("water plants", items[0].Name)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store := getSQLiteStore(t, assert)
	defer store.Close()

	ctx := context.Background()

	todo, err := db.NewTodo("water plants", "the ones on the balcony", "2024-10-10T17:00", nil)
	assert.Nil(err)
	assert.Nil(store.Add(ctx, todo))

	items, err := store.List(ctx, "", "")
	assert.Nil(err)
	assert.Len(items, 1)
	assert.Equal("water plants", items[0].Name)
	assert.Equal("the ones on the balcony", items[0].Description)
	assert.Equal("2024-10-10T17:00Z", items[0].DueDate)
	assert.False(items[0].Done)
}

func TestSQLiteStoreMarkDone(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store := getSQLiteStore(t, assert)
	defer store.Close()

	ctx := context.Background()

	addSampleTodos(assert, store)
	assert.Nil(store.MarkDone(ctx, "Todo 3"))

	items, err := store.List(ctx, "", "")
	assert.Nil(err)

	for _, item := range items {
		assert.Equal(item.Name == "Todo 3", item.Done)
	}
}

func TestSQLiteStoreMarkDoneNotFound(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store := getSQLiteStore(t, assert)
	defer store.Close()

	ctx := context.Background()

	addSampleTodos(assert, store)

	var notFoundErr *db.NotFoundError

	err := store.MarkDone(ctx, "Todo 99")
	assert.ErrorAs(err, &notFoundErr)

	// nothing was updated
	items, err := store.List(ctx, "", "")
	assert.Nil(err)

	for _, item := range items {
		assert.False(item.Done)
	}
}

func TestSQLiteStoreMarkDoneDuplicateNames(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store := getSQLiteStore(t, assert)
	defer store.Close()

	ctx := context.Background()

	assert.Nil(store.Add(ctx, &db.Todo{Name: "pay rent", Description: "october"}))
	assert.Nil(store.Add(ctx, &db.Todo{Name: "pay rent", Description: "november"}))

	assert.Nil(store.MarkDone(ctx, "pay rent"))

	items, err := store.List(ctx, "", "")
	assert.Nil(err)
	assert.Len(items, 2)
	assert.Equal("october", items[0].Description)
	assert.True(items[0].Done)
	assert.False(items[1].Done)
}

func TestSQLiteStoreSortedList(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store := getSQLiteStore(t, assert)
	defer store.Close()

	ctx := context.Background()

	addSampleTodos(assert, store)

	items, err := store.List(ctx, db.SortByDueDate, db.SortAsc)
	assert.Nil(err)
	assert.Equal([]string{"Todo 3", "Todo 1", "Todo 2"}, names(items))

	// descending still puts the item without a due date last
	items, err = store.List(ctx, db.SortByDueDate, db.SortDesc)
	assert.Nil(err)
	assert.Equal([]string{"Todo 1", "Todo 3", "Todo 2"}, names(items))
}

func TestSQLiteStoreInvalidSortKey(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	store := getSQLiteStore(t, assert)
	defer store.Close()

	var validationErr *db.ValidationError

	_, err := store.List(context.Background(), "priority", db.SortAsc)
	assert.ErrorAs(err, &validationErr)
}
