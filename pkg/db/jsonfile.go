package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// JSONStore persists the whole collection as a single JSON array and
// re-reads it on every operation. Two processes writing the same file can
// race; acceptable for a local single-user CLI.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store over the JSON file at path. The file is not
// touched until the first operation.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) load() ([]*Todo, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// first run; save will create the file
			return []*Todo{}, nil
		}

		return nil, &StorageError{Op: fmt.Sprintf("read %s", s.path), Err: err}
	}

	var items []*Todo
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, &StorageError{Op: fmt.Sprintf("parse %s", s.path), Err: err}
	}

	return items, nil
}

// save writes through a temp file in the same directory and renames it over
// the target, so an interrupted write never truncates the existing file.
func (s *JSONStore) save(items []*Todo) error {
	b, err := json.MarshalIndent(items, "", "\t")
	if err != nil {
		return &StorageError{Op: "marshal todos", Err: err}
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".todos-*.json")
	if err != nil {
		return &StorageError{Op: fmt.Sprintf("create temp file in %s", dir), Err: err}
	}

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return &StorageError{Op: fmt.Sprintf("write %s", tmp.Name()), Err: err}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return &StorageError{Op: fmt.Sprintf("close %s", tmp.Name()), Err: err}
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return &StorageError{Op: fmt.Sprintf("replace %s", s.path), Err: err}
	}

	return nil
}

// Add implements Store.
func (s *JSONStore) Add(ctx context.Context, todo *Todo) error {
	items, err := s.load()
	if err != nil {
		return err
	}

	return s.save(append(items, todo))
}

// List implements Store.
func (s *JSONStore) List(ctx context.Context, sortBy, sortOrder string) ([]*Todo, error) {
	items, err := s.load()
	if err != nil {
		return nil, err
	}

	if err := SortTodos(items, sortBy, sortOrder); err != nil {
		return nil, err
	}

	return items, nil
}

// MarkDone implements Store. The file is left untouched when no item
// matches.
func (s *JSONStore) MarkDone(ctx context.Context, name string) error {
	items, err := s.load()
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.Name == name {
			item.Done = true

			return s.save(items)
		}
	}

	return &NotFoundError{Name: name}
}

// Close implements Store. The JSON store holds no handle between
// operations.
func (s *JSONStore) Close() error {
	return nil
}
