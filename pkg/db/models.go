package db

import (
	"fmt"
	"sort"
	"time"
)

// DueDateFormat is the storage format for due dates: minute precision, UTC.
// The trailing Z is a literal marker, not a zone offset.
const DueDateFormat = "2006-01-02T15:04Z"

// dueDateInputFormat accepts due dates typed without a zone; they are
// interpreted in the caller's location.
const dueDateInputFormat = "2006-01-02T15:04"

// Sort keys accepted by List and SortTodos.
const (
	SortByName        = "name"
	SortByDescription = "description"
	SortByDone        = "done"
	SortByDueDate     = "due_date"
)

// Sort orders accepted by List and SortTodos.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Todo is a single todo item. DueDate holds the UTC storage string
// (DueDateFormat), or "" when the item has no due date. The empty string,
// not null, keeps the field shape identical across both backends.
type Todo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	DueDate     string `json:"due_date"`
}

// NewTodo validates and builds a todo item with done=false. dueDate may be
// empty, a zone-less 2006-01-02T15:04 value interpreted in loc, or an
// RFC 3339 timestamp; non-empty values are converted to UTC for storage.
func NewTodo(name, description, dueDate string, loc *time.Location) (*Todo, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	stored := ""

	if dueDate != "" {
		t, err := ParseDueDate(dueDate, loc)
		if err != nil {
			return nil, err
		}

		stored = t.UTC().Format(DueDateFormat)
	}

	return &Todo{Name: name, Description: description, DueDate: stored}, nil
}

// ParseDueDate parses a due date as typed on the command line. Values
// without a zone are interpreted in loc.
func ParseDueDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.ParseInLocation(dueDateInputFormat, value, loc); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation(DueDateFormat, value, time.UTC); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Time{}, &ValidationError{
		Field:  "due_date",
		Reason: fmt.Sprintf("%q is not a timestamp like %s", value, dueDateInputFormat),
	}
}

// DueTime returns the parsed due date, or the zero time when the item has
// none.
func (t *Todo) DueTime() time.Time {
	if t.DueDate == "" {
		return time.Time{}
	}

	due, err := time.ParseInLocation(DueDateFormat, t.DueDate, time.UTC)
	if err != nil {
		return time.Time{}
	}

	return due
}

// SortTodos stably sorts items in place. An empty sortBy keeps insertion
// order. When sorting by due date, items without one always sort after
// dated items, in either direction; ties keep insertion order.
func SortTodos(items []*Todo, sortBy, sortOrder string) error {
	if sortBy == "" {
		return nil
	}

	if err := validateSort(sortBy, sortOrder); err != nil {
		return err
	}

	desc := sortOrder == SortDesc

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		if sortBy == SortByDueDate {
			if (a.DueDate == "") != (b.DueDate == "") {
				return b.DueDate == ""
			}

			if a.DueDate == "" {
				return false
			}
		}

		var less bool

		switch sortBy {
		case SortByName:
			if a.Name == b.Name {
				return false
			}

			less = a.Name < b.Name
		case SortByDescription:
			if a.Description == b.Description {
				return false
			}

			less = a.Description < b.Description
		case SortByDone:
			if a.Done == b.Done {
				return false
			}

			less = !a.Done
		case SortByDueDate:
			if a.DueDate == b.DueDate {
				return false
			}

			// the fixed-width storage format sorts chronologically as text
			less = a.DueDate < b.DueDate
		}

		if desc {
			return !less
		}

		return less
	})

	return nil
}

func validateSort(sortBy, sortOrder string) error {
	switch sortBy {
	case SortByName, SortByDescription, SortByDone, SortByDueDate:
	default:
		return &ValidationError{
			Field:  "sort-by",
			Reason: fmt.Sprintf("%q is not sortable, use name, description, done or due_date", sortBy),
		}
	}

	switch sortOrder {
	case "", SortAsc, SortDesc:
	default:
		return &ValidationError{
			Field:  "sort-order",
			Reason: fmt.Sprintf("%q is not a sort order, use asc or desc", sortOrder),
		}
	}

	return nil
}
