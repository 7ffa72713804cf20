package controller

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cthealljr/todo/pkg/db"
)

// displayFormat renders stored due dates with an explicit zone offset.
const displayFormat = "2006-01-02T15:04-0700"

// listContent implements tview.TableContent, which tview.Table uses to
// update data.
type listContent struct {
	tview.TableContentReadOnly
	items []*db.Todo
	loc   *time.Location
}

// GetCell returns the cell at the given position or nil if no cell.
func (l *listContent) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		switch col {
		case 0:
			return tview.NewTableCell("name").SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 1:
			return tview.NewTableCell("description").SetExpansion(descNameRatio).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 2:
			return tview.NewTableCell("due date").SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 3:
			return tview.NewTableCell("done").SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		}
	}

	if row-1 >= len(l.items) {
		return nil
	}

	todo := l.items[row-1]

	switch col {
	case 0:
		return tview.NewTableCell(todo.Name).SetExpansion(1).SetReference(todo)
	case 1:
		return tview.NewTableCell(todo.Description).SetExpansion(descNameRatio)
	case 2:
		due := ""
		if t := todo.DueTime(); !t.IsZero() {
			due = t.In(l.loc).Format(displayFormat)
		}

		return tview.NewTableCell(due).SetExpansion(1)
	case 3:
		if todo.Done {
			return tview.NewTableCell("done").SetTextColor(tcell.ColorGreen).SetExpansion(1)
		}

		return tview.NewTableCell("").SetExpansion(1)
	}

	return nil
}

// GetRowCount returns the number of rows in the table.
func (l *listContent) GetRowCount() int {
	return len(l.items) + 1
}

// GetColumnCount returns the number of columns in the table.
func (l *listContent) GetColumnCount() int {
	return 4
}
