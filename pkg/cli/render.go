package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cthealljr/todo/pkg/db"
)

// displayFormat renders stored due dates with an explicit zone offset.
const displayFormat = "2006-01-02T15:04-0700"

// renderList prints todos as an aligned table with due dates shown in loc.
// Column widths track the widest value in each column.
func renderList(w io.Writer, items []*db.Todo, loc *time.Location) {
	if len(items) == 0 {
		fmt.Fprintln(w, "(no todos)")

		return
	}

	headers := []string{"Name", "Description", "Due Date", "Done"}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	rows := make([][]string, 0, len(items))

	for _, item := range items {
		row := []string{item.Name, item.Description, displayDueDate(item, loc), fmt.Sprintf("%t", item.Done)}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}

		rows = append(rows, row)
	}

	writeRow(w, headers, widths)

	for _, row := range rows {
		writeRow(w, row, widths)
	}
}

func writeRow(w io.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
	}

	fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
}

func displayDueDate(item *db.Todo, loc *time.Location) string {
	due := item.DueTime()
	if due.IsZero() {
		return ""
	}

	return due.In(loc).Format(displayFormat)
}
